// FarmQuest - Gamified Farming Habits
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package community

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/cloud-exit/farmquest/internal/kvstore"
)

// Message is one note sent to a member.
type Message struct {
	ID       string    `yaml:"id"`
	MemberID int       `yaml:"member_id"`
	Text     string    `yaml:"text"`
	SentAt   time.Time `yaml:"sent_at"`
}

// MessageLog records sent messages in the in-memory store. Keys sort by
// member and then send time, so a prefix scan yields one member's thread in
// order.
type MessageLog struct {
	store *kvstore.Store
	seq   uint64
}

// NewMessageLog wraps store.
func NewMessageLog(store *kvstore.Store) *MessageLog {
	return &MessageLog{store: store}
}

func memberPrefix(memberID int) []byte {
	return []byte(fmt.Sprintf("msg:%06d:", memberID))
}

// Append stores a message and returns it with its assigned id.
func (l *MessageLog) Append(memberID int, text string, at time.Time) (Message, error) {
	l.seq++
	m := Message{
		ID:       uuid.NewString(),
		MemberID: memberID,
		Text:     strings.TrimSpace(text),
		SentAt:   at,
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return Message{}, fmt.Errorf("encode message: %w", err)
	}
	key := fmt.Sprintf("%s%020d:%08d", memberPrefix(memberID), at.UnixNano(), l.seq)
	if err := l.store.Put([]byte(key), data); err != nil {
		return Message{}, fmt.Errorf("store message: %w", err)
	}
	return m, nil
}

// Thread returns every message sent to memberID, oldest first.
func (l *MessageLog) Thread(memberID int) ([]Message, error) {
	var out []Message
	err := l.store.Scan(memberPrefix(memberID), func(_, value []byte) error {
		var m Message
		if err := yaml.Unmarshal(value, &m); err != nil {
			return fmt.Errorf("decode message: %w", err)
		}
		out = append(out, m)
		return nil
	})
	return out, err
}

// Recent returns the n newest messages sent to memberID, newest first.
func (l *MessageLog) Recent(memberID, n int) ([]Message, error) {
	values, err := l.store.Latest(memberPrefix(memberID), n)
	if err != nil {
		return nil, err
	}
	out := make([]Message, 0, len(values))
	for _, v := range values {
		var m Message
		if err := yaml.Unmarshal(v, &m); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		out = append(out, m)
	}
	return out, nil
}

// Count returns how many messages have been sent in total.
func (l *MessageLog) Count() (int, error) {
	return l.store.Count([]byte("msg:"))
}

// Clear drops every message, as on logout.
func (l *MessageLog) Clear() error {
	l.seq = 0
	if err := l.store.DropPrefix([]byte("msg:")); err != nil {
		return fmt.Errorf("clear messages: %w", err)
	}
	return nil
}
