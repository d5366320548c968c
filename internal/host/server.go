// Package host implements the hosting side of a multiplayer session:
// the TCP listener, the game-progression state machine, and the
// discovery announcer.
package host

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"time"

	"geoquiz/internal/domain"
	"geoquiz/internal/game"
	"geoquiz/internal/protocol"
)

const (
	// Time allowed to write a frame to a client
	writeWait = 10 * time.Second

	// Size of the inbound read buffer per connection
	readBufferSize = 4096

	// Size of the event queue feeding the session loop
	eventQueueSize = 256

	// DefaultGracePeriod is the delay between the last question and
	// the final results, absorbing in-flight late answers.
	DefaultGracePeriod = 3 * time.Second
)

// QuestionSupply produces the question sequence for one game.
type QuestionSupply interface {
	FetchQuestions(count int, difficultyLevels []int) ([]domain.Country, error)
}

// Options configures a hosted session.
type Options struct {
	Config domain.GameConfig

	// Bind is the listen address, all interfaces by default.
	Bind string

	// GracePeriod overrides DefaultGracePeriod when positive.
	GracePeriod time.Duration

	// RevealCorrectness makes the host unicast an ANSWER_RESULT to
	// each submitting player. Off by default: scores are revealed
	// only at game end.
	RevealCorrectness bool

	// TickInterval overrides the one-second countdown tick. Tests
	// shorten it; real sessions leave it alone.
	TickInterval time.Duration
}

// session phases
type phase int

const (
	phaseLobby phase = iota
	phasePlaying
	phaseCalculating
	phaseEnded
)

// remote tracks one accepted connection. playerID stays empty until
// the connection sends JOIN_GAME.
type remote struct {
	conn     net.Conn
	playerID string
}

// Server owns all state of one hosted session: roster, sequencer,
// collector, timer, and every client socket. Per-connection reader
// goroutines never touch that state directly; they post events into a
// single queue consumed by one loop, which serializes all mutations.
type Server struct {
	opts   Options
	supply QuestionSupply
	logger *slog.Logger

	ln net.Listener

	// Loop-owned state. Only the run goroutine reads or writes these.
	roster    *game.Roster
	sequencer *game.Sequencer
	collector *game.Collector
	timer     *game.Timer
	departed  map[string]string
	conns     map[net.Conn]*remote
	clients   map[string]net.Conn
	phase     phase
	grace     *time.Timer
	stopped   bool

	events chan event
	done   chan struct{}

	stopMu sync.Mutex

	playerCount   int
	playerCountMu sync.RWMutex
}

// events posted into the session loop
type (
	evAccepted struct{ conn net.Conn }
	evMessage  struct {
		conn net.Conn
		msg  protocol.Message
	}
	evClosed  struct{ conn net.Conn }
	evTick    struct{ remaining int }
	evExpired struct{ questionIndex int }
	evGrace   struct{}
	evStart   struct{ reply chan error }
	evConfig  struct {
		cfg   domain.GameConfig
		reply chan error
	}
	evStop struct {
		reason string
		reply  chan struct{}
	}
)

type event interface{}

// New creates an unstarted host session.
func New(opts Options, supply QuestionSupply, logger *slog.Logger) *Server {
	if opts.GracePeriod <= 0 {
		opts.GracePeriod = DefaultGracePeriod
	}

	timer := game.NewTimer()
	if opts.TickInterval > 0 {
		timer = game.NewTimerWithInterval(opts.TickInterval)
	}

	return &Server{
		opts:      opts,
		supply:    supply,
		logger:    logger,
		roster:    game.NewRoster(),
		collector: game.NewCollector(),
		timer:     timer,
		departed:  make(map[string]string),
		conns:     make(map[net.Conn]*remote),
		clients:   make(map[string]net.Conn),
		phase:     phaseLobby,
		events:    make(chan event, eventQueueSize),
		done:      make(chan struct{}),
	}
}

// Start binds the listening socket and launches the session loop. A
// bind failure is returned to the caller; no retry is attempted.
func (s *Server) Start(port int) error {
	bind := s.opts.Bind
	if bind == "" {
		bind = "0.0.0.0"
	}

	ln, err := net.Listen("tcp", net.JoinHostPort(bind, strconv.Itoa(port)))
	if err != nil {
		return fmt.Errorf("start host session: %w", err)
	}
	s.ln = ln

	s.logger.Info("host session listening", "addr", ln.Addr().String())

	go s.run()
	go s.acceptLoop()

	return nil
}

// Addr returns the bound listener address.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// PlayerCount returns the current roster size. Safe to call from any
// goroutine; the discovery announcer uses it.
func (s *Server) PlayerCount() int {
	s.playerCountMu.RLock()
	defer s.playerCountMu.RUnlock()
	return s.playerCount
}

// Done is closed when the session has fully stopped.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// StartGame begins question progression. It fails unless the session
// is in the lobby with at least one player and everyone ready.
func (s *Server) StartGame() error {
	reply := make(chan error, 1)
	select {
	case s.events <- evStart{reply}:
	case <-s.done:
		return domain.ErrSessionEnded
	}
	select {
	case err := <-reply:
		return err
	case <-s.done:
		return domain.ErrSessionEnded
	}
}

// UpdateConfig replaces the session config and re-pushes it to every
// connected player. Only possible before the game starts.
func (s *Server) UpdateConfig(cfg domain.GameConfig) error {
	reply := make(chan error, 1)
	select {
	case s.events <- evConfig{cfg, reply}:
	case <-s.done:
		return domain.ErrSessionEnded
	}
	select {
	case err := <-reply:
		return err
	case <-s.done:
		return domain.ErrSessionEnded
	}
}

// Stop ends the session: every remaining client receives
// SERVER_STOPPED before its socket closes, then the listener and
// timers are released. Calling Stop again is a no-op.
func (s *Server) Stop(reason string) {
	s.stopMu.Lock()
	defer s.stopMu.Unlock()

	select {
	case <-s.done:
		return
	default:
	}

	reply := make(chan struct{})
	select {
	case s.events <- evStop{reason, reply}:
	case <-s.done:
		return
	}
	select {
	case <-reply:
	case <-s.done:
	}
}

// post delivers an event from an I/O goroutine into the loop, giving
// up once the session is gone.
func (s *Server) post(ev event) {
	select {
	case s.events <- ev:
	case <-s.done:
	}
}

// acceptLoop hands new connections to the session loop and spawns
// their readers.
func (s *Server) acceptLoop() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			select {
			case <-s.done:
			default:
				s.logger.Debug("accept error", "error", err)
			}
			return
		}

		s.post(evAccepted{conn})
		go s.readLoop(conn)
	}
}

// readLoop decodes inbound frames for one connection and posts them
// in arrival order. Connection loss of any kind is reported as a
// close; the host treats socket errors identically to a clean close.
func (s *Server) readLoop(conn net.Conn) {
	dec := protocol.NewDecoder(s.logger)
	buf := make([]byte, readBufferSize)

	for {
		n, err := conn.Read(buf)
		if n > 0 {
			for _, msg := range dec.Push(buf[:n]) {
				s.post(evMessage{conn, msg})
			}
		}
		if err != nil {
			s.post(evClosed{conn})
			return
		}
	}
}

// run is the session loop. It is the only goroutine that touches
// session state.
func (s *Server) run() {
	for ev := range s.events {
		s.handle(ev)
		if s.stopped {
			close(s.done)
			return
		}
	}
}

func (s *Server) handle(ev event) {
	switch ev := ev.(type) {
	case evAccepted:
		s.conns[ev.conn] = &remote{conn: ev.conn}
	case evMessage:
		s.handleMessage(ev.conn, ev.msg)
	case evClosed:
		s.handleClosed(ev.conn)
	case evTick:
		if s.phase == phasePlaying {
			s.broadcast(protocol.TimeUpdate{TimeRemaining: ev.remaining})
		}
	case evExpired:
		s.handleExpired(ev.questionIndex)
	case evGrace:
		s.finishGame()
	case evStart:
		ev.reply <- s.startGame()
	case evConfig:
		ev.reply <- s.updateConfig(ev.cfg)
	case evStop:
		s.terminate(ev.reason)
		close(ev.reply)
	}
}

func (s *Server) handleMessage(conn net.Conn, msg protocol.Message) {
	switch msg := msg.(type) {
	case protocol.JoinGame:
		s.handleJoin(conn, msg)
	case protocol.PlayerReady:
		s.handleReady(msg)
	case protocol.SubmitAnswer:
		s.handleAnswer(msg)
	default:
		s.logger.Debug("ignoring unexpected message", "type", msg.Type())
	}
}

func (s *Server) handleJoin(conn net.Conn, msg protocol.JoinGame) {
	if s.phase != phaseLobby {
		s.logger.Debug("join ignored outside lobby", "playerId", msg.PlayerID)
		return
	}

	r, ok := s.conns[conn]
	if !ok {
		return
	}
	r.playerID = msg.PlayerID
	s.clients[msg.PlayerID] = conn

	player := s.roster.Join(msg.PlayerID, msg.PlayerName)
	s.setPlayerCount(s.roster.Len())

	s.logger.Info("player joined",
		"name", player.Name,
		"host", player.IsHost,
	)

	s.send(conn, protocol.GameConfig{GameConfig: s.opts.Config})
	s.broadcastRoster()
}

func (s *Server) handleReady(msg protocol.PlayerReady) {
	if s.phase != phaseLobby {
		return
	}
	// Unknown ids are a no-op inside SetReady.
	s.roster.SetReady(msg.PlayerID, msg.IsReady)
	s.broadcastRoster()
}

// handleAnswer scores and records a submitted answer. An index that no
// longer resolves is dropped without response.
func (s *Server) handleAnswer(msg protocol.SubmitAnswer) {
	if s.phase != phasePlaying && s.phase != phaseCalculating {
		return
	}

	q := s.sequencer.ByIndex(msg.QuestionIndex)
	if q == nil {
		return
	}

	answer := domain.NewAnswer(
		q.Index,
		msg.PlayerID,
		msg.PlayerName,
		msg.Answer,
		q.Country.Name,
		q.Country.FlagFile,
	)
	s.collector.Record(msg.PlayerID, answer)

	if s.opts.RevealCorrectness {
		if conn, ok := s.clients[msg.PlayerID]; ok {
			s.send(conn, protocol.AnswerResult{
				QuestionIndex: answer.QuestionIndex,
				IsCorrect:     answer.IsCorrect,
				CorrectAnswer: answer.CorrectAnswer,
			})
		}
	}
}

func (s *Server) handleClosed(conn net.Conn) {
	r, ok := s.conns[conn]
	if !ok {
		return
	}
	delete(s.conns, conn)
	conn.Close()

	if r.playerID == "" {
		return
	}
	delete(s.clients, r.playerID)

	player := s.roster.Remove(r.playerID)
	s.setPlayerCount(s.roster.Len())
	if player == nil {
		return
	}

	// Keep the name around so their answers stay attributed at game
	// end.
	s.departed[player.ID] = player.Name

	s.logger.Info("player disconnected", "name", player.Name, "host", player.IsHost)

	if player.IsHost {
		// Host status never transfers; the session ends instead.
		s.terminate("Host left the game")
		return
	}

	s.broadcast(protocol.PlayerLeft{PlayerID: player.ID, PlayerName: player.Name})
	s.broadcastRoster()
}

func (s *Server) startGame() error {
	if s.phase != phaseLobby {
		return domain.ErrAlreadyStarted
	}
	if s.roster.Len() == 0 {
		return domain.ErrNoPlayers
	}
	if !s.roster.AllReady() {
		return domain.ErrNotAllReady
	}

	countries, err := s.supply.FetchQuestions(
		s.opts.Config.QuestionsCount,
		s.opts.Config.DifficultyLevels,
	)
	if err != nil {
		return fmt.Errorf("generate questions: %w", err)
	}

	s.sequencer = game.NewSequencer(countries)
	s.phase = phasePlaying

	s.logger.Info("game started",
		"players", s.roster.Len(),
		"questions", s.sequencer.Len(),
	)

	s.broadcast(protocol.GameStart{})
	s.sendQuestion(s.sequencer.Current())

	return nil
}

func (s *Server) updateConfig(cfg domain.GameConfig) error {
	if s.phase != phaseLobby {
		return domain.ErrAlreadyStarted
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.opts.Config = cfg
	s.broadcast(protocol.GameConfig{GameConfig: cfg})
	return nil
}

// sendQuestion broadcasts a question and restarts the countdown for
// it.
func (s *Server) sendQuestion(q *domain.Question) {
	s.broadcast(protocol.NewQuestion{Question: *q})

	index := q.Index
	s.timer.Start(s.opts.Config.TimePerQuestion,
		func(remaining int) { s.post(evTick{remaining}) },
		func() { s.post(evExpired{index}) },
	)
}

// handleExpired advances past the question whose countdown ran out.
// Expiry events carry their question index so a stale one queued
// behind an advance cannot skip a question.
func (s *Server) handleExpired(questionIndex int) {
	if s.phase != phasePlaying {
		return
	}
	current := s.sequencer.Current()
	if current == nil || current.Index != questionIndex {
		return
	}

	s.timer.Cancel()

	if next := s.sequencer.Advance(); next != nil {
		s.sendQuestion(next)
		return
	}

	// Sequence exhausted: give stragglers a moment before results.
	s.phase = phaseCalculating
	s.broadcast(protocol.CalculatingResults{})
	s.grace = time.AfterFunc(s.opts.GracePeriod, func() { s.post(evGrace{}) })
}

func (s *Server) finishGame() {
	if s.phase != phaseCalculating {
		return
	}
	s.phase = phaseEnded

	all := s.collector.DrainAll(s.resolveName)
	s.broadcast(protocol.GameEnd{AllAnswers: all})
	s.collector.Clear()

	s.logger.Info("game ended", "players", len(all))
}

// resolveName finds the best-known display name for a player id:
// current roster first, then the departed lookup.
func (s *Server) resolveName(playerID string) string {
	if p := s.roster.Get(playerID); p != nil {
		return p.Name
	}
	return s.departed[playerID]
}

// terminate shuts the session down: timers cancelled, SERVER_STOPPED
// delivered before sockets close, listener released. Idempotent.
func (s *Server) terminate(reason string) {
	if s.stopped {
		return
	}
	s.stopped = true
	s.phase = phaseEnded

	s.timer.Cancel()
	if s.grace != nil {
		s.grace.Stop()
	}

	s.broadcast(protocol.ServerStopped{Reason: reason})

	for conn := range s.conns {
		conn.Close()
	}
	s.conns = make(map[net.Conn]*remote)
	s.clients = make(map[string]net.Conn)

	s.ln.Close()

	s.logger.Info("host session stopped", "reason", reason)
}

func (s *Server) broadcastRoster() {
	s.broadcast(protocol.PlayerListUpdate{Players: s.roster.Players()})
}

// broadcast writes a frame to every joined client. Delivery is not
// atomic across clients, but each client sees frames in send order.
func (s *Server) broadcast(msg protocol.Message) {
	for playerID, conn := range s.clients {
		if err := s.send(conn, msg); err != nil {
			s.logger.Debug("broadcast write failed",
				"playerId", playerID,
				"type", msg.Type(),
				"error", err,
			)
		}
	}
}

func (s *Server) send(conn net.Conn, msg protocol.Message) error {
	frame, err := protocol.Encode(msg)
	if err != nil {
		return err
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	_, err = conn.Write(frame)
	return err
}

func (s *Server) setPlayerCount(n int) {
	s.playerCountMu.Lock()
	s.playerCount = n
	s.playerCountMu.Unlock()
}
