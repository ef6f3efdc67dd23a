package display

import (
	"context"
	"sync"

	"phrasebot/phrases"
)

// Memory is an in-process surface. It is safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	texts map[string]string
}

func NewMemory(ids ...string) *Memory {
	m := &Memory{texts: make(map[string]string)}
	for _, id := range ids {
		m.texts[id] = ""
	}
	return m
}

func (m *Memory) Add(id, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts[id] = text
}

func (m *Memory) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.texts, id)
}

func (m *Memory) Text(id string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	text, ok := m.texts[id]
	return text, ok
}

func (m *Memory) Create(_ context.Context, id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.texts[id]; !ok {
		m.texts[id] = ""
	}
	return id, nil
}

func (m *Memory) Element(_ context.Context, id string) (phrases.Element, error) {
	if _, ok := m.Text(id); !ok {
		return nil, phrases.ErrTargetNotFound
	}
	return &memoryElement{surface: m, id: id}, nil
}

type memoryElement struct {
	surface *Memory
	id      string
}

func (e *memoryElement) SetText(_ context.Context, text string) error {
	if e == nil {
		return phrases.ErrTargetNotFound
	}
	e.surface.mu.Lock()
	defer e.surface.mu.Unlock()
	if _, ok := e.surface.texts[e.id]; !ok {
		return phrases.ErrTargetNotFound
	}
	e.surface.texts[e.id] = text
	return nil
}
