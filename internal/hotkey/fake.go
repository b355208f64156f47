package hotkey

import (
	"errors"
	"sync"

	"github.com/example/expert-spoon/internal/keymap"
)

// Fake is an in-memory Hotkey used by tests.
type Fake struct {
	Combo keymap.Combo

	mu         sync.Mutex
	registered bool
	keydown    chan struct{}
}

func NewFake(combo keymap.Combo) *Fake {
	return &Fake{Combo: combo, keydown: make(chan struct{}, 1)}
}

func (f *Fake) Register() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.registered {
		return errors.New("hotkey already registered")
	}
	f.registered = true
	return nil
}

func (f *Fake) Unregister() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = false
	return nil
}

func (f *Fake) Registered() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registered
}

func (f *Fake) Keydown() <-chan struct{} { return f.keydown }

// SimKeydown simulates a press of the combination.
func (f *Fake) SimKeydown() { f.keydown <- struct{}{} }

// FakeSet hands out Fakes and refuses a combination that is already taken,
// the way the OS rejects a duplicate registration.
type FakeSet struct {
	mu    sync.Mutex
	taken map[string]*Fake
	all   []*Fake
}

func NewFakeSet() *FakeSet {
	return &FakeSet{taken: make(map[string]*Fake)}
}

// New implements Factory.
func (s *FakeSet) New(combo keymap.Combo) (Hotkey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.taken[combo.String()]; ok && prev.Registered() {
		return nil, errors.New("hotkey already registered")
	}
	f := NewFake(combo)
	s.taken[combo.String()] = f
	s.all = append(s.all, f)
	return f, nil
}

// Fakes returns every Fake handed out so far, in creation order.
func (s *FakeSet) Fakes() []*Fake {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Fake, len(s.all))
	copy(out, s.all)
	return out
}
