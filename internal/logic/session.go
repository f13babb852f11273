package logic

import (
	"sync"

	"github.com/battlepoint/arena/internal/contract"
	"github.com/battlepoint/arena/internal/models"
	"github.com/battlepoint/arena/internal/wallet"
)

// session is the application state shared by every handler: the wallet
// connection, its two contract handles and the last successful chain read.
type session struct {
	mu      sync.RWMutex
	conn    *wallet.Connection
	reader  PlayerReader
	writer  Transactor
	player  models.PlayerState
	weapons [models.WeaponSlots]models.WeaponStats
}

func newSession() *session {
	return &session{
		player:  models.EmptyPlayerState(""),
		weapons: models.DefaultWeapons(),
	}
}

func (s *session) attach(conn *wallet.Connection, reader PlayerReader, writer Transactor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sameAccount := s.conn != nil && s.conn.Account == conn.Account
	s.conn = conn
	s.reader = reader
	s.writer = writer
	if !sameAccount {
		s.player = models.EmptyPlayerState(conn.Account.Hex())
		s.weapons = models.DefaultWeapons()
	}
}

func (s *session) detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn = nil
	s.reader = nil
	s.writer = nil
	s.player = models.EmptyPlayerState("")
	s.weapons = models.DefaultWeapons()
}

func (s *session) handles() (*wallet.Connection, PlayerReader, Transactor) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conn, s.reader, s.writer
}

// apply replaces the player view in one step. Snapshots for an account that
// is no longer connected are dropped.
func (s *session) apply(snap *contract.Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil || s.conn.Account.Hex() != snap.Player.Address {
		return false
	}
	s.player = snap.Player
	s.weapons = snap.Weapons
	return true
}

func (s *session) view() (*wallet.Connection, models.PlayerState, [models.WeaponSlots]models.WeaponStats) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conn, s.player, s.weapons
}
