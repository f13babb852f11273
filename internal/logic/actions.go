package logic

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/battlepoint/arena/internal/contract"
	"github.com/battlepoint/arena/internal/models"
)

const waitingMessage = "Waiting for confirmation..."

// action describes one user-triggered contract transaction and the messages
// the feed shows around it.
type action struct {
	name    string
	pending string
	success string
	title   string
	detail  string
	submit  func(ctx context.Context, tx Transactor, player common.Address) (common.Hash, error)
}

func (a *Arena) WinMatch(ctx context.Context) (*models.ActionResponse, error) {
	return a.run(ctx, action{
		name:    "win_match",
		pending: "Submitting battle victory...",
		success: "Victory! Earned 25 BPT",
		title:   "VICTORY! +25 BPT",
		detail:  "+10 Energy",
		submit: func(ctx context.Context, tx Transactor, player common.Address) (common.Hash, error) {
			return tx.MintForWin(ctx, player)
		},
	})
}

func (a *Arena) EnergyBoost(ctx context.Context) (*models.ActionResponse, error) {
	return a.run(ctx, action{
		name:    "energy_boost",
		pending: "Boosting energy...",
		success: "Energy boosted +50",
		title:   "Energy Boosted!",
		detail:  "+50 Energy",
		submit: func(ctx context.Context, tx Transactor, _ common.Address) (common.Hash, error) {
			return tx.EnergyBoost(ctx)
		},
	})
}

func (a *Arena) Transfer(ctx context.Context, to, amount string) (*models.ActionResponse, error) {
	if !common.IsHexAddress(to) {
		return nil, fmt.Errorf("%w: %q is not an address", ErrInvalidInput, to)
	}
	wei, err := parseAmount(amount)
	if err != nil {
		return nil, err
	}
	recipient := common.HexToAddress(to)

	return a.run(ctx, action{
		name:    "transfer",
		pending: fmt.Sprintf("Transferring %s BPT...", amount),
		success: fmt.Sprintf("Transferred %s BPT to teammate", amount),
		title:   "Transfer successful!",
		detail:  fmt.Sprintf("Sent %s BPT", amount),
		submit: func(ctx context.Context, tx Transactor, _ common.Address) (common.Hash, error) {
			return tx.Transfer(ctx, recipient, wei)
		},
	})
}

func (a *Arena) Burn(ctx context.Context, amount string) (*models.ActionResponse, error) {
	wei, err := parseAmount(amount)
	if err != nil {
		return nil, err
	}
	return a.run(ctx, action{
		name:    "burn",
		pending: fmt.Sprintf("Burning %s BPT...", amount),
		success: fmt.Sprintf("Burned %s BPT", amount),
		title:   "Tokens burned!",
		detail:  fmt.Sprintf("Destroyed %s BPT", amount),
		submit: func(ctx context.Context, tx Transactor, _ common.Address) (common.Hash, error) {
			return tx.Burn(ctx, wei)
		},
	})
}

func (a *Arena) UpgradeWeapon(ctx context.Context, weaponID, statID int) (*models.ActionResponse, error) {
	if weaponID < 0 || weaponID >= models.WeaponSlots {
		return nil, fmt.Errorf("%w: weapon %d", ErrInvalidInput, weaponID)
	}
	if statID < 0 || statID >= len(models.StatNames) {
		return nil, fmt.Errorf("%w: stat %d", ErrInvalidInput, statID)
	}
	stat := models.StatNames[statID]

	return a.run(ctx, action{
		name:    "upgrade_weapon",
		pending: fmt.Sprintf("Upgrading weapon %s...", stat),
		success: fmt.Sprintf("Weapon upgraded: %s +5", stat),
		title:   "Weapon Upgraded!",
		detail:  strings.ToUpper(stat) + " +5",
		submit: func(ctx context.Context, tx Transactor, _ common.Address) (common.Hash, error) {
			return tx.UpgradeWeapon(ctx, weaponID, statID)
		},
	})
}

func (a *Arena) Stake(ctx context.Context, amount string) (*models.ActionResponse, error) {
	wei, err := parseAmount(amount)
	if err != nil {
		return nil, err
	}
	return a.run(ctx, action{
		name:    "stake",
		pending: fmt.Sprintf("Staking %s BPT...", amount),
		success: fmt.Sprintf("Staked %s BPT", amount),
		title:   "Staking successful!",
		detail:  fmt.Sprintf("Staked %s BPT", amount),
		submit: func(ctx context.Context, tx Transactor, _ common.Address) (common.Hash, error) {
			return tx.Stake(ctx, wei)
		},
	})
}

func (a *Arena) Unstake(ctx context.Context, amount string) (*models.ActionResponse, error) {
	wei, err := parseAmount(amount)
	if err != nil {
		return nil, err
	}
	return a.run(ctx, action{
		name:    "unstake",
		pending: fmt.Sprintf("Unstaking %s BPT...", amount),
		success: fmt.Sprintf("Unstaked %s BPT", amount),
		title:   "Unstaking successful!",
		detail:  fmt.Sprintf("Withdrew %s BPT", amount),
		submit: func(ctx context.Context, tx Transactor, _ common.Address) (common.Hash, error) {
			return tx.Unstake(ctx, wei)
		},
	})
}

// ClaimRewards reports the rewards pending before the claim, since the reload
// that follows resets them.
func (a *Arena) ClaimRewards(ctx context.Context) (*models.ActionResponse, error) {
	_, player, _ := a.session.view()
	rewards := contract.FormatFixed(player.PendingRewards, 2)

	return a.run(ctx, action{
		name:    "claim_rewards",
		pending: "Claiming rewards...",
		success: fmt.Sprintf("Claimed %s BPT rewards", rewards),
		title:   "Rewards claimed!",
		detail:  fmt.Sprintf("Received %s BPT", rewards),
		submit: func(ctx context.Context, tx Transactor, _ common.Address) (common.Hash, error) {
			return tx.ClaimRewards(ctx)
		},
	})
}

func parseAmount(amount string) (*big.Int, error) {
	wei, err := contract.ParseAmount(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return wei, nil
}

// run executes one action: submit, wait for confirmation, reload, log.
// The processing flag is held for the whole chain and released before the
// response is built.
func (a *Arena) run(ctx context.Context, act action) (*models.ActionResponse, error) {
	conn, _, writer := a.session.handles()
	if conn == nil || writer == nil {
		return nil, ErrNotConnected
	}
	if !a.processing.CompareAndSwap(false, true) {
		actionsTotal.WithLabelValues(act.name, "busy").Inc()
		return nil, ErrBusy
	}

	hash, n, err := a.execute(ctx, act, conn.Account, writer)
	a.setProcessing(false)
	if err != nil {
		return nil, err
	}

	return &models.ActionResponse{
		TxHash:       hash.Hex(),
		Message:      act.success,
		Notification: n,
		Dashboard:    a.Dashboard(),
	}, nil
}

func (a *Arena) execute(ctx context.Context, act action, player common.Address, writer Transactor) (common.Hash, models.Notification, error) {
	a.setProcessing(true)
	if a.txTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.txTimeout)
		defer cancel()
	}

	a.addActivity(models.ActivityInfo, act.pending)
	hash, err := act.submit(ctx, writer, player)
	if err != nil {
		return common.Hash{}, models.Notification{}, a.fail(act, err)
	}

	a.addActivity(models.ActivityInfo, waitingMessage)
	start := time.Now()
	if _, err := writer.WaitMined(ctx, hash); err != nil {
		return hash, models.Notification{}, a.fail(act, err)
	}
	confirmationDuration.WithLabelValues(act.name).Observe(time.Since(start).Seconds())
	a.logger.Infow("Action confirmed", "action", act.name, "hash", hash.Hex(), "duration", time.Since(start))

	_ = a.reload(ctx, player)

	actionsTotal.WithLabelValues(act.name, "success").Inc()
	a.addActivity(models.ActivitySuccess, act.success)
	return hash, a.notify(models.ActivitySuccess, act.title, act.detail), nil
}

func (a *Arena) fail(act action, err error) error {
	reason := contract.Reason(err, contract.FallbackTxFailure)
	actionsTotal.WithLabelValues(act.name, "failure").Inc()
	a.logger.Errorw("Action failed", "action", act.name, "reason", reason, "error", err)
	a.addActivity(models.ActivityError, reason)
	a.notify(models.ActivityError, "Transaction failed", reason)
	return &ActionError{Action: act.name, Reason: reason, Err: err}
}

func (a *Arena) setProcessing(on bool) {
	a.processing.Store(on)
	if on {
		processingGauge.Set(1)
	} else {
		processingGauge.Set(0)
	}
	a.publish(models.StreamProcessing, on)
}
