// Command smoke drives a running arena API through one full round:
// connect the wallet, win a match and print the resulting dashboard.
// Stream events are logged while the transaction is mined.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/battlepoint/arena/internal/models"
)

const defaultAPIURL = "http://localhost:8080/api/v1"

func main() {
	apiURL := flag.String("api", envOr("API_URL", defaultAPIURL), "arena API base URL")
	action := flag.String("action", "win", "action to run after connecting (win, energy-boost, claim)")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	log := logger.Sugar()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	base := strings.TrimRight(*apiURL, "/")
	client := &http.Client{}

	if stop, err := watchStream(ctx, base, log); err != nil {
		log.Warnw("Stream unavailable, continuing without it", "error", err)
	} else {
		defer stop()
	}

	var status models.WalletStatus
	if err := post(ctx, client, base+"/wallet/connect", &status); err != nil {
		log.Fatalw("Connect failed", "error", err)
	}
	log.Infow("Wallet connected", "address", status.Address, "provider", status.Provider, "chain", status.ChainName)

	var resp models.ActionResponse
	if err := post(ctx, client, base+"/actions/"+*action, &resp); err != nil {
		log.Fatalw("Action failed", "action", *action, "error", err)
	}
	log.Infow("Action confirmed", "action", *action, "tx", resp.TxHash, "message", resp.Message)

	out, err := json.MarshalIndent(resp.Dashboard, "", "  ")
	if err != nil {
		log.Fatalw("Failed to render dashboard", "error", err)
	}
	fmt.Println(string(out))
}

// post sends an empty JSON object and decodes a 200 response into dst.
func post(ctx context.Context, client *http.Client, endpoint string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader("{}"))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(data)))
	}
	return json.Unmarshal(data, dst)
}

// watchStream logs every event pushed on the websocket until stop is called.
func watchStream(ctx context.Context, base string, log *zap.SugaredLogger) (func(), error) {
	u, err := url.Parse(base + "/ws")
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var ev models.StreamEvent
			if err := conn.ReadJSON(&ev); err != nil {
				return
			}
			log.Infow("Stream event", "type", ev.Type, "payload", ev.Payload)
		}
	}()

	return func() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		conn.Close()
		<-done
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
