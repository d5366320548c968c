package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"geoquiz/internal/client"
	"geoquiz/internal/domain"
	"geoquiz/internal/game"
	"geoquiz/internal/protocol"
)

// ui is the thin terminal presentation layer. It holds the per-player
// view state and drives the session core only through the client
// connection it was handed.
type ui struct {
	conn       *client.Connection
	playerID   string
	playerName string
	out        io.Writer

	mu       sync.Mutex
	state    domain.State
	question *protocol.NewQuestion
	ready    bool

	done chan struct{}
	once sync.Once
}

func newUI(playerID, playerName string, out io.Writer) *ui {
	return &ui{
		playerID:   playerID,
		playerName: playerName,
		out:        out,
		state:      domain.StateMenu,
		done:       make(chan struct{}),
	}
}

func (u *ui) setState(s domain.State) {
	u.mu.Lock()
	u.state = s
	u.mu.Unlock()
}

func (u *ui) currentState() domain.State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

func (u *ui) printf(format string, args ...any) {
	fmt.Fprintf(u.out, format+"\n", args...)
}

func (u *ui) finish() {
	u.once.Do(func() { close(u.done) })
}

// handleMessage renders one inbound session message.
func (u *ui) handleMessage(msg protocol.Message) {
	switch msg := msg.(type) {
	case protocol.GameConfig:
		u.setState(domain.StateLobby)
		u.printf("session: %d questions, %ds each, difficulty %v",
			msg.QuestionsCount, msg.TimePerQuestion, msg.DifficultyLevels)
	case protocol.PlayerListUpdate:
		u.printf("players:")
		for _, p := range msg.Players {
			marker := " "
			if p.IsReady {
				marker = "*"
			}
			role := ""
			if p.IsHost {
				role = " (host)"
			}
			u.printf("  [%s] %s%s", marker, p.Name, role)
		}
	case protocol.GameStart:
		u.setState(domain.StatePlaying)
		u.printf("game on!")
	case protocol.NewQuestion:
		u.mu.Lock()
		q := msg
		u.question = &q
		u.mu.Unlock()
		u.printf("question %d: which country is this? (%s, flag %s)",
			msg.Index+1, msg.Country.Region, msg.Country.FlagFile)
	case protocol.TimeUpdate:
		if msg.TimeRemaining <= 5 || msg.TimeRemaining%10 == 0 {
			u.printf("  %ds left", msg.TimeRemaining)
		}
	case protocol.AnswerResult:
		if msg.IsCorrect {
			u.printf("  correct!")
		} else {
			u.printf("  wrong, it was %s", msg.CorrectAnswer)
		}
	case protocol.CalculatingResults:
		u.printf("calculating results...")
	case protocol.GameEnd:
		u.setState(domain.StateEnded)
		u.printf("final standings:")
		for i, entry := range game.Leaderboard(msg.AllAnswers) {
			u.printf("  %d. %s: %d%% (%d/%d)",
				i+1, entry.PlayerName, entry.Score, entry.Correct, entry.Total)
		}
	case protocol.PlayerLeft:
		u.printf("%s left the game", msg.PlayerName)
	case protocol.ServerStopped:
		u.setState(domain.StateEnded)
		u.printf("session over: %s", msg.Reason)
		u.finish()
	}
}

// handleDisconnect reports an unexpected transport loss.
func (u *ui) handleDisconnect(err error) {
	u.printf("lost connection to host: %v", err)
	u.finish()
}

// inputLoop reads player input until EOF or the session ends. Lines
// starting with "/" are commands; anything else is an answer to the
// current question. onStart is non-nil only for the hosting player.
func (u *ui) inputLoop(in io.Reader, onStart func() error) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case <-u.done:
			return
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == "/quit":
			u.finish()
			return
		case line == "/ready":
			if u.currentState() != domain.StateLobby {
				u.printf("ready only matters in the lobby")
				continue
			}
			u.mu.Lock()
			u.ready = !u.ready
			ready := u.ready
			u.mu.Unlock()
			u.conn.Send(protocol.PlayerReady{PlayerID: u.playerID, IsReady: ready})
		case line == "/start":
			if onStart == nil {
				u.printf("only the host can start the game")
				continue
			}
			if err := onStart(); err != nil {
				u.printf("cannot start: %v", err)
			}
		case strings.HasPrefix(line, "/"):
			u.printf("commands: /ready /start /quit, anything else answers the question")
		default:
			u.submitAnswer(line)
		}
	}
}

func (u *ui) submitAnswer(text string) {
	u.mu.Lock()
	state := u.state
	q := u.question
	u.mu.Unlock()

	if state != domain.StatePlaying || q == nil {
		u.printf("no question to answer yet")
		return
	}

	u.conn.Send(protocol.SubmitAnswer{
		PlayerID:      u.playerID,
		PlayerName:    u.playerName,
		QuestionIndex: q.Index,
		Answer:        text,
	})
}
