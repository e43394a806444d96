package auth

import "time"

func (m *TokenManager) SetClock(now func() time.Time) {
	m.now = now
}

const DummyHash = dummyHash
