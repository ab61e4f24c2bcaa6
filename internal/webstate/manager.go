// Package webstate holds the per-visitor state of the storefront pages:
// the shopping cart, the login session and the calculator widget. State
// lives in a cookie session and crosses the boundary only through an
// explicit Load/Save pair, never as a side effect of a mutation.
package webstate

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	cartKey = "cart"
	authKey = "auth"
	calcKey = "calculator"
)

// Manager hands out the visitor's state for a request. It is constructed
// once and injected into the page handlers that need it.
type Manager struct {
	store *session.Store
}

func NewManager(store *session.Store) *Manager {
	return &Manager{store: store}
}

// State is everything the storefront pages keep between requests.
type State struct {
	Cart *Cart
	Auth *AuthSession
	Calc *Calculator

	sess *session.Session
}

// Load materializes the visitor's state from the cookie session. Missing
// or corrupt entries come back as fresh zero-state.
func (m *Manager) Load(c *fiber.Ctx) (*State, error) {
	sess, err := m.store.Get(c)
	if err != nil {
		return nil, err
	}

	st := &State{
		Cart: NewCart(),
		Auth: &AuthSession{},
		Calc: NewCalculator(),
		sess: sess,
	}
	loadJSON(sess, cartKey, st.Cart)
	loadJSON(sess, authKey, st.Auth)
	loadJSON(sess, calcKey, st.Calc)
	return st, nil
}

// Save writes the state back and persists the session. Without a Save,
// mutations made during the request are discarded.
func (s *State) Save() error {
	storeJSON(s.sess, cartKey, s.Cart)
	storeJSON(s.sess, authKey, s.Auth)
	storeJSON(s.sess, calcKey, s.Calc)
	return s.sess.Save()
}

// Destroy wipes the whole session (dipakai saat logout).
func (s *State) Destroy() error {
	return s.sess.Destroy()
}

func loadJSON(sess *session.Session, key string, v interface{}) {
	raw, ok := sess.Get(key).(string)
	if !ok || raw == "" {
		return
	}
	// Data korup dianggap kosong saja
	_ = json.Unmarshal([]byte(raw), v)
}

func storeJSON(sess *session.Session, key string, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	sess.Set(key, string(b))
}
