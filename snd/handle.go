// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"github.com/google/uuid"
)

// Handle identifies one playing voice. The zero Handle never refers to a voice.
type Handle struct {
	id uuid.UUID
}

func newHandle() Handle {
	return Handle{
		id: uuid.Must(uuid.NewV7()),
	}
}

func (h Handle) IsZero() bool {
	return h.id == uuid.Nil
}

func (h Handle) String() string {
	if h.IsZero() {
		return "<none>"
	}
	return h.id.String()
}
