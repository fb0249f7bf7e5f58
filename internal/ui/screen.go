package ui

import "github.com/hajimehoshi/ebiten/v2"

// Screen is the interface for all UI screens (Home, Settings).
//
// Screens that animate own their drivers: they start them in OnEnter and
// stop them in OnExit, exactly once per activation. The manager guarantees
// OnExit is called on every path that removes a screen, so a correctly
// written screen can never leak a running driver.
type Screen interface {
	// Update handles input and logic. Return a non-nil ScreenTransition to change screens.
	Update() (*ScreenTransition, error)
	// Draw renders the screen.
	Draw(dst *ebiten.Image)
	// OnEnter is called when the screen becomes active. Acquire drivers here.
	OnEnter()
	// OnExit is called when the screen is removed or covered. Release drivers here.
	OnExit()
	// Name returns the screen name for the header highlight and debugging.
	Name() string
}

type TransitionType int

const (
	TransitionPush TransitionType = iota
	TransitionPop
	TransitionReplace
	TransitionFocusHeader // request header-bar keyboard focus
)

type ScreenTransition struct {
	Type   TransitionType
	Screen Screen // nil for Pop and FocusHeader
}

// ScreenManager manages a stack of screens below the persistent header bar.
type ScreenManager struct {
	stack        []Screen
	Header       *HeaderBar
	headerActive bool
}

func NewScreenManager() *ScreenManager {
	return &ScreenManager{}
}

func (sm *ScreenManager) Push(s Screen) {
	if top := sm.Current(); top != nil {
		top.OnExit()
	}
	sm.stack = append(sm.stack, s)
	s.OnEnter()
}

func (sm *ScreenManager) Pop() {
	if len(sm.stack) == 0 {
		return
	}
	top := sm.stack[len(sm.stack)-1]
	top.OnExit()
	sm.stack = sm.stack[:len(sm.stack)-1]
	if len(sm.stack) > 0 {
		sm.stack[len(sm.stack)-1].OnEnter()
	}
}

func (sm *ScreenManager) Replace(s Screen) {
	if len(sm.stack) > 0 {
		top := sm.stack[len(sm.stack)-1]
		top.OnExit()
		sm.stack[len(sm.stack)-1] = s
	} else {
		sm.stack = append(sm.stack, s)
	}
	s.OnEnter()
}

// ClearStack exits and removes all screens from the stack.
func (sm *ScreenManager) ClearStack() {
	for len(sm.stack) > 0 {
		top := sm.stack[len(sm.stack)-1]
		top.OnExit()
		sm.stack = sm.stack[:len(sm.stack)-1]
	}
}

func (sm *ScreenManager) Current() Screen {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

func (sm *ScreenManager) Update() error {
	s := sm.Current()
	if s == nil {
		return nil
	}

	// Mouse clicks in the header area are intercepted before the screen gets them
	if sm.Header != nil {
		mx, my, clicked := MouseJustClicked()
		if clicked && float64(my) < HeaderHeight {
			if sm.Header.HandleClick(mx, my) {
				sm.headerActive = false
				sm.Header.Active = false
			}
			sm.updateHeaderHighlight()
			return nil
		}
	}

	// When the header has keyboard focus, route input to it instead of the screen
	if sm.headerActive && sm.Header != nil {
		if sm.Header.Update() == HeaderActionDefocus {
			sm.headerActive = false
		}
		sm.updateHeaderHighlight()
		return nil
	}

	tr, err := s.Update()
	if err != nil {
		return err
	}
	if tr != nil {
		switch tr.Type {
		case TransitionPush:
			sm.Push(tr.Screen)
		case TransitionPop:
			sm.Pop()
		case TransitionReplace:
			sm.Replace(tr.Screen)
		case TransitionFocusHeader:
			if sm.Header != nil {
				sm.headerActive = true
				sm.Header.FocusFromBelow()
			}
		}
	}

	sm.updateHeaderHighlight()
	return nil
}

func (sm *ScreenManager) updateHeaderHighlight() {
	if sm.Header == nil {
		return
	}
	if cur := sm.Current(); cur != nil {
		sm.Header.ActiveScreenName = cur.Name()
	}
}

func (sm *ScreenManager) Draw(dst *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(dst)
	}
	if sm.Header != nil {
		sm.Header.Draw(dst)
	}
}

func (sm *ScreenManager) StackSize() int {
	return len(sm.stack)
}
