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
	"errors"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cloud-exit/farmquest/internal/records"
	"github.com/cloud-exit/farmquest/internal/session"
)

// ErrNoMessageLog is returned when messages are sent without a store.
var ErrNoMessageLog = errors.New("message log unavailable")

// MessagePopularity is the popularity earned for each message sent.
const MessagePopularity = 5

// Community is the state behind the community tab.
type Community struct {
	sess    *session.Session
	members []Member
	log     *MessageLog
	now     func() time.Time
}

// New returns a community seeded with the starting members. Messages are
// recorded in log.
func New(sess *session.Session, log *MessageLog) *Community {
	return &Community{sess: sess, members: SeedMembers(), log: log, now: time.Now}
}

// Members returns every member.
func (c *Community) Members() []Member { return c.members }

// Get returns member id.
func (c *Community) Get(id int) (Member, bool) { return records.Find(c.members, id) }

// Filter returns the members listed under tab that match term.
func (c *Community) Filter(tab Tab, term string) []Member {
	var out []Member
	for _, m := range c.members {
		if m.InTab(tab) && m.Matches(term) {
			out = append(out, m)
		}
	}
	return out
}

// Count returns how many members are listed under tab.
func (c *Community) Count(tab Tab) int {
	n := 0
	for _, m := range c.members {
		if m.InTab(tab) {
			n++
		}
	}
	return n
}

// CanGift reports whether amount credits can be sent right now.
func (c *Community) CanGift(amount int) bool {
	return amount > 0 && amount <= c.sess.Credits()
}

// Gift sends amount credits to member id. The sender loses the credits and
// gains a tenth of them as popularity; the member's balance grows by amount.
// Gifts larger than the balance, non-positive gifts and unknown members are
// ignored.
func (c *Community) Gift(id, amount int) bool {
	if !c.CanGift(amount) {
		return false
	}
	if _, ok := c.Get(id); !ok {
		return false
	}
	c.sess.OnCreditsChange(c.sess.Credits() - amount)
	c.sess.OnPopularityChange(c.sess.Popularity() + amount/10)
	c.members = records.Replace(c.members, id, func(m Member) Member {
		m.Credits += amount
		return m
	})
	c.sess.Log.Info("gift sent", zap.Int("member", id), zap.Int("amount", amount))
	return true
}

// SendMessage records text for member id and adds MessagePopularity to the
// sender. Blank messages are ignored.
func (c *Community) SendMessage(id int, text string) (Message, bool, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, false, nil
	}
	if _, ok := c.Get(id); !ok {
		return Message{}, false, nil
	}
	if c.log == nil {
		return Message{}, false, ErrNoMessageLog
	}
	msg, err := c.log.Append(id, text, c.now())
	if err != nil {
		return Message{}, false, err
	}
	c.sess.OnPopularityChange(c.sess.Popularity() + MessagePopularity)
	c.sess.Log.Info("message sent", zap.Int("member", id), zap.String("id", msg.ID))
	return msg, true, nil
}

// Thread returns the messages sent to member id, oldest first.
func (c *Community) Thread(id int) ([]Message, error) {
	if c.log == nil {
		return nil, nil
	}
	return c.log.Thread(id)
}

// Latest returns up to n of the newest messages sent to member id, oldest
// first.
func (c *Community) Latest(id, n int) ([]Message, error) {
	if c.log == nil {
		return nil, nil
	}
	msgs, err := c.log.Recent(id, n)
	if err != nil {
		return nil, err
	}
	slices.Reverse(msgs)
	return msgs, nil
}

// AddFriend marks member id as a friend.
func (c *Community) AddFriend(id int) {
	c.members = records.Replace(c.members, id, func(m Member) Member {
		m.Friend = true
		return m
	})
}
