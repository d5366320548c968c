package host

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"geoquiz/internal/client"
	"geoquiz/internal/domain"
	"geoquiz/internal/protocol"
	"geoquiz/internal/questions"
)

const awaitTimeout = 5 * time.Second

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDataset() []domain.Country {
	return []domain.Country{
		{Name: "France", Region: "Europe", Difficulty: 1, FlagFile: "fr.png"},
		{Name: "Japan", Region: "Asia", Difficulty: 1, FlagFile: "jp.png"},
		{Name: "Brazil", Region: "South America", Difficulty: 1, FlagFile: "br.png"},
		{Name: "Canada", Region: "North America", Difficulty: 1, FlagFile: "ca.png"},
		{Name: "Kenya", Region: "Africa", Difficulty: 1, FlagFile: "ke.png"},
		{Name: "Norway", Region: "Europe", Difficulty: 1, FlagFile: "no.png"},
	}
}

// newTestServer starts a session with a compressed clock: 20ms ticks
// and a short grace period keep a full three-question game under a
// second.
func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()

	if opts.Config.QuestionsCount == 0 {
		opts.Config = domain.GameConfig{
			QuestionsCount:   3,
			TimePerQuestion:  3,
			DifficultyLevels: []int{1},
		}
	}
	opts.Bind = "127.0.0.1"
	if opts.TickInterval == 0 {
		opts.TickInterval = 20 * time.Millisecond
	}
	if opts.GracePeriod == 0 {
		opts.GracePeriod = 300 * time.Millisecond
	}

	srv := New(opts, questions.NewStoreWith(testDataset()), testLogger())
	if err := srv.Start(0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() { srv.Stop("test cleanup") })
	return srv
}

// testClient joins a session and buffers everything the host sends.
type testClient struct {
	id   string
	name string
	conn *client.Connection
	msgs chan protocol.Message
}

func dial(t *testing.T, srv *Server, id, name string) *testClient {
	t.Helper()

	tc := &testClient{
		id:   id,
		name: name,
		msgs: make(chan protocol.Message, 128),
	}
	tc.conn = client.New(
		func(m protocol.Message) { tc.msgs <- m },
		nil,
		testLogger(),
	)

	port := srv.Addr().(*net.TCPAddr).Port
	ctx, cancel := context.WithTimeout(context.Background(), awaitTimeout)
	defer cancel()
	if err := tc.conn.Connect(ctx, "127.0.0.1", port, id, name); err != nil {
		t.Fatalf("%s connect: %v", name, err)
	}
	t.Cleanup(tc.conn.Disconnect)

	// The config push confirms the join was processed.
	tc.await(t, protocol.TypeGameConfig)
	return tc
}

// await discards messages until one of the wanted type arrives.
func (tc *testClient) await(t *testing.T, want protocol.Type) protocol.Message {
	t.Helper()
	deadline := time.After(awaitTimeout)
	for {
		select {
		case m := <-tc.msgs:
			if m.Type() == want {
				return m
			}
		case <-deadline:
			t.Fatalf("%s: timed out waiting for %s", tc.name, want)
			return nil
		}
	}
}

// awaitRoster discards messages until a roster update satisfies pred.
func (tc *testClient) awaitRoster(t *testing.T, pred func(protocol.PlayerListUpdate) bool) {
	t.Helper()
	deadline := time.After(awaitTimeout)
	for {
		select {
		case m := <-tc.msgs:
			if update, ok := m.(protocol.PlayerListUpdate); ok && pred(update) {
				return
			}
		case <-deadline:
			t.Fatalf("%s: timed out waiting for roster update", tc.name)
		}
	}
}

func allReady(n int) func(protocol.PlayerListUpdate) bool {
	return func(update protocol.PlayerListUpdate) bool {
		if len(update.Players) != n {
			return false
		}
		for _, p := range update.Players {
			if !p.IsReady {
				return false
			}
		}
		return true
	}
}

func TestFullGameWithMidGameDisconnect(t *testing.T) {
	srv := newTestServer(t, Options{})

	alice := dial(t, srv, "p1", "Alice")
	bob := dial(t, srv, "p2", "Bob")

	// Bob has not readied up yet.
	if err := srv.StartGame(); !errors.Is(err, domain.ErrNotAllReady) {
		t.Fatalf("StartGame before ready = %v, want ErrNotAllReady", err)
	}

	bob.conn.Send(protocol.PlayerReady{PlayerID: "p2", IsReady: true})
	alice.awaitRoster(t, allReady(2))

	if err := srv.StartGame(); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	alice.await(t, protocol.TypeGameStart)
	bob.await(t, protocol.TypeGameStart)

	for i := 0; i < 3; i++ {
		q := alice.await(t, protocol.TypeNewQuestion).(protocol.NewQuestion)
		if q.Index != i {
			t.Fatalf("question %d has index %d", i, q.Index)
		}
		alice.conn.Send(protocol.SubmitAnswer{
			PlayerID:      "p1",
			PlayerName:    "Alice",
			QuestionIndex: q.Index,
			Answer:        q.Country.Name,
		})

		if i < 2 {
			bq := bob.await(t, protocol.TypeNewQuestion).(protocol.NewQuestion)
			bob.conn.Send(protocol.SubmitAnswer{
				PlayerID:      "p2",
				PlayerName:    "Bob",
				QuestionIndex: bq.Index,
				Answer:        "Atlantis",
			})
		}
		if i == 1 {
			bob.conn.Disconnect()
		}
	}

	// An index that never existed must vanish without a trace.
	alice.conn.Send(protocol.SubmitAnswer{
		PlayerID:      "p1",
		PlayerName:    "Alice",
		QuestionIndex: 99,
		Answer:        "France",
	})

	alice.await(t, protocol.TypeCalculatingResults)
	end := alice.await(t, protocol.TypeGameEnd).(protocol.GameEnd)

	if len(end.AllAnswers) != 2 {
		t.Fatalf("game end has %d players, want 2", len(end.AllAnswers))
	}

	byID := make(map[string]domain.PlayerAnswers, len(end.AllAnswers))
	for _, pa := range end.AllAnswers {
		byID[pa.PlayerID] = pa
	}

	aliceAnswers := byID["p1"]
	if aliceAnswers.PlayerName != "Alice" {
		t.Errorf("p1 name = %q, want Alice", aliceAnswers.PlayerName)
	}
	if len(aliceAnswers.Answers) != 3 {
		t.Fatalf("Alice has %d answers, want 3", len(aliceAnswers.Answers))
	}
	for _, a := range aliceAnswers.Answers {
		if !a.IsCorrect {
			t.Errorf("Alice answer %q for question %d scored incorrect", a.Answer, a.QuestionIndex)
		}
	}

	// Bob left before the end; his answers keep his name anyway.
	bobAnswers := byID["p2"]
	if bobAnswers.PlayerName != "Bob" {
		t.Errorf("p2 name = %q, want Bob", bobAnswers.PlayerName)
	}
	if len(bobAnswers.Answers) != 2 {
		t.Fatalf("Bob has %d answers, want 2", len(bobAnswers.Answers))
	}
	for _, a := range bobAnswers.Answers {
		if a.IsCorrect {
			t.Errorf("Bob answer %q for question %d scored correct", a.Answer, a.QuestionIndex)
		}
	}
}

func TestStartGameGuards(t *testing.T) {
	srv := newTestServer(t, Options{})

	if err := srv.StartGame(); !errors.Is(err, domain.ErrNoPlayers) {
		t.Fatalf("StartGame with no players = %v, want ErrNoPlayers", err)
	}

	dial(t, srv, "p1", "Alice") // first joiner hosts and is auto-ready

	if err := srv.StartGame(); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	if err := srv.StartGame(); !errors.Is(err, domain.ErrAlreadyStarted) {
		t.Fatalf("second StartGame = %v, want ErrAlreadyStarted", err)
	}
}

func TestUpdateConfig(t *testing.T) {
	srv := newTestServer(t, Options{})
	alice := dial(t, srv, "p1", "Alice")

	next := domain.GameConfig{
		QuestionsCount:   10,
		TimePerQuestion:  30,
		DifficultyLevels: []int{1, 2},
	}
	if err := srv.UpdateConfig(next); err != nil {
		t.Fatalf("UpdateConfig: %v", err)
	}

	deadline := time.After(awaitTimeout)
	for {
		var got protocol.GameConfig
		select {
		case m := <-alice.msgs:
			cfg, ok := m.(protocol.GameConfig)
			if !ok {
				continue
			}
			got = cfg
		case <-deadline:
			t.Fatal("updated config never pushed")
		}
		if got.QuestionsCount == 10 {
			break
		}
	}

	bad := domain.GameConfig{QuestionsCount: 1, TimePerQuestion: 30, DifficultyLevels: []int{1}}
	if err := srv.UpdateConfig(bad); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("UpdateConfig out of bounds = %v, want ErrInvalidConfig", err)
	}

	// Back to a startable config, then lock it in by starting.
	if err := srv.UpdateConfig(domain.GameConfig{
		QuestionsCount:   5,
		TimePerQuestion:  10,
		DifficultyLevels: []int{1},
	}); err != nil {
		t.Fatalf("UpdateConfig: %v", err)
	}
	if err := srv.StartGame(); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	if err := srv.UpdateConfig(next); !errors.Is(err, domain.ErrAlreadyStarted) {
		t.Fatalf("UpdateConfig after start = %v, want ErrAlreadyStarted", err)
	}
}

func TestRevealCorrectness(t *testing.T) {
	srv := newTestServer(t, Options{RevealCorrectness: true})
	alice := dial(t, srv, "p1", "Alice")

	if err := srv.StartGame(); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	q := alice.await(t, protocol.TypeNewQuestion).(protocol.NewQuestion)

	alice.conn.Send(protocol.SubmitAnswer{
		PlayerID:      "p1",
		PlayerName:    "Alice",
		QuestionIndex: q.Index,
		Answer:        "  " + q.Country.Name + " ",
	})

	result := alice.await(t, protocol.TypeAnswerResult).(protocol.AnswerResult)
	if !result.IsCorrect {
		t.Errorf("answer %q judged incorrect", q.Country.Name)
	}
	if result.CorrectAnswer != q.Country.Name {
		t.Errorf("correct answer = %q, want %q", result.CorrectAnswer, q.Country.Name)
	}
}

func TestStopNotifiesClientsBeforeClosing(t *testing.T) {
	srv := newTestServer(t, Options{})
	alice := dial(t, srv, "p1", "Alice")
	bob := dial(t, srv, "p2", "Bob")

	srv.Stop("Host ended the game")

	for _, tc := range []*testClient{alice, bob} {
		stopped := tc.await(t, protocol.TypeServerStopped).(protocol.ServerStopped)
		if stopped.Reason != "Host ended the game" {
			t.Errorf("%s got reason %q", tc.name, stopped.Reason)
		}
	}

	select {
	case <-srv.Done():
	case <-time.After(awaitTimeout):
		t.Fatal("Done never closed")
	}

	// Already stopped; must return immediately without another notice.
	srv.Stop("again")
	select {
	case m := <-alice.msgs:
		if m.Type() == protocol.TypeServerStopped {
			t.Error("second Stop re-broadcast SERVER_STOPPED")
		}
	case <-time.After(100 * time.Millisecond):
	}

	if err := srv.StartGame(); !errors.Is(err, domain.ErrSessionEnded) {
		t.Errorf("StartGame after Stop = %v, want ErrSessionEnded", err)
	}
}

func TestHostPlayerDisconnectEndsSession(t *testing.T) {
	srv := newTestServer(t, Options{})
	alice := dial(t, srv, "p1", "Alice") // host
	bob := dial(t, srv, "p2", "Bob")

	alice.conn.Disconnect()

	stopped := bob.await(t, protocol.TypeServerStopped).(protocol.ServerStopped)
	if stopped.Reason != "Host left the game" {
		t.Errorf("reason = %q, want %q", stopped.Reason, "Host left the game")
	}

	select {
	case <-srv.Done():
	case <-time.After(awaitTimeout):
		t.Fatal("session did not stop after host disconnect")
	}
}

func TestNonHostDisconnectAnnounced(t *testing.T) {
	srv := newTestServer(t, Options{})
	alice := dial(t, srv, "p1", "Alice")
	bob := dial(t, srv, "p2", "Bob")

	bob.conn.Disconnect()

	left := alice.await(t, protocol.TypePlayerLeft).(protocol.PlayerLeft)
	if left.PlayerID != "p2" || left.PlayerName != "Bob" {
		t.Errorf("player left = %+v", left)
	}
	alice.awaitRoster(t, func(update protocol.PlayerListUpdate) bool {
		return len(update.Players) == 1 && update.Players[0].ID == "p1"
	})
}

func TestJoinIgnoredAfterStart(t *testing.T) {
	srv := newTestServer(t, Options{})
	alice := dial(t, srv, "p1", "Alice")

	if err := srv.StartGame(); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	alice.await(t, protocol.TypeGameStart)

	// A latecomer connects but never makes it onto the roster.
	late := client.New(func(protocol.Message) {}, nil, testLogger())
	port := srv.Addr().(*net.TCPAddr).Port
	ctx, cancel := context.WithTimeout(context.Background(), awaitTimeout)
	defer cancel()
	if err := late.Connect(ctx, "127.0.0.1", port, "p9", "Late"); err != nil {
		t.Fatalf("late connect: %v", err)
	}
	t.Cleanup(late.Disconnect)

	deadline := time.Now().Add(awaitTimeout)
	for srv.PlayerCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("player count = %d, want 1", srv.PlayerCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestPlayerCount(t *testing.T) {
	srv := newTestServer(t, Options{})

	waitCount := func(want int) {
		t.Helper()
		deadline := time.Now().Add(awaitTimeout)
		for srv.PlayerCount() != want {
			if time.Now().After(deadline) {
				t.Fatalf("player count = %d, want %d", srv.PlayerCount(), want)
			}
			time.Sleep(10 * time.Millisecond)
		}
	}

	dial(t, srv, "p1", "Alice")
	waitCount(1)
	bob := dial(t, srv, "p2", "Bob")
	waitCount(2)
	bob.conn.Disconnect()
	waitCount(1)
}

func TestStartOnTakenPort(t *testing.T) {
	srv := newTestServer(t, Options{})
	port := srv.Addr().(*net.TCPAddr).Port

	other := New(Options{Bind: "127.0.0.1"}, questions.NewStoreWith(testDataset()), testLogger())
	if err := other.Start(port); err == nil {
		other.Stop("unexpected")
		t.Fatal("Start on a taken port succeeded")
	}
}
