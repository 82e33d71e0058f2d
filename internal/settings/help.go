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

package settings

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FAQ is one help question.
type FAQ struct {
	Question string
	Answer   string
}

// FAQs lists the help questions.
var FAQs = []FAQ{
	{
		"How do I earn more Farm Credits?",
		"You can earn Farm Credits by completing daily habits, finishing challenges, helping community members, and maintaining streaks. Each completed habit gives you XP and credits based on difficulty.",
	},
	{
		"What are the different farming levels?",
		"FarmQuest has 20 levels: Seedling (1-2), Sprout (3-4), Sapling (5-6), Young Plant (7-8), Mature Plant (9-10), Expert Grower (11-12), Master Farmer (13-14), Sustainable Steward (15-16), Eco Champion (17-18), and Green Guardian (19-20).",
	},
	{
		"How do challenges work?",
		"Daily challenges refresh every 24 hours and weekly challenges refresh every Monday. Complete them to earn credits, XP, and exclusive badges. Some challenges require specific farming activities or community participation.",
	},
	{
		"Can I customize my avatar?",
		"Yes! You can customize your avatar's appearance, clothing, farming tools, and accessories. Unlock new items by reaching higher levels and completing special achievements.",
	},
	{
		"How do I connect with other farmers?",
		"Use the Community tab to find nearby farmers, join farming groups, send gifts, and share experiences. Building connections increases your popularity and unlocks collaborative challenges.",
	},
}

// FAQMarkdown renders the FAQs as one markdown document.
func FAQMarkdown() string {
	var b strings.Builder
	b.WriteString("# Frequently asked questions\n")
	for _, f := range FAQs {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", f.Question, f.Answer)
	}
	return b.String()
}

// BotDelay is how long the support bot waits before answering.
const BotDelay = time.Second

var botReplies = []string{
	"That's a great question! Let me help you with that farming technique.",
	"Based on your farming experience, I'd recommend checking our Learning section for detailed guides.",
	"You can find more information about this in our Documentation section.",
	"Have you tried the sustainable farming practices in your Habits section?",
	"For specific farming issues, I recommend connecting with experienced farmers in the Community tab.",
}

// ChatMessage is one line of the support chat.
type ChatMessage struct {
	ID      string
	Text    string
	FromBot bool
}

// Chat is the support chat transcript.
type Chat struct {
	messages []ChatMessage
	pick     func(n int) int
}

// NewChat starts a transcript with the bot's greeting.
func NewChat() *Chat {
	return &Chat{
		messages: []ChatMessage{{ID: uuid.NewString(), Text: "Hello! How can I help you with your farming questions today?", FromBot: true}},
		pick:     rand.IntN,
	}
}

// Messages returns the transcript, oldest first.
func (c *Chat) Messages() []ChatMessage { return c.messages }

// Send appends the farmer's message. Blank messages are ignored.
func (c *Chat) Send(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	c.messages = append(c.messages, ChatMessage{ID: uuid.NewString(), Text: text})
	return true
}

// Reply appends a canned bot answer and returns it.
func (c *Chat) Reply() ChatMessage {
	m := ChatMessage{ID: uuid.NewString(), Text: botReplies[c.pick(len(botReplies))], FromBot: true}
	c.messages = append(c.messages, m)
	return m
}
