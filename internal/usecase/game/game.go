package game

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"chess_analysis/internal/domain/game"
	errs "chess_analysis/internal/errors"
)

type StateStore interface {
	LoadState(ctx context.Context) (game.State, error)
	SaveState(ctx context.Context, state game.State) error
}

// AnalysisUseCase owns the games, the library and the cursor.
// Every command writes the full state through the store before it takes effect.
type AnalysisUseCase struct {
	mu     sync.Mutex
	store  StateStore
	engine RulesEngine
	log    *zap.SugaredLogger
	state  game.State
}

// NewAnalysisUseCase restores the persisted state. Missing or unreadable state starts empty.
func NewAnalysisUseCase(ctx context.Context, store StateStore, engine RulesEngine, log *zap.SugaredLogger) *AnalysisUseCase {
	a := &AnalysisUseCase{
		store:  store,
		engine: engine,
		log:    log,
		state:  game.NewState(),
	}

	state, err := store.LoadState(ctx)
	switch {
	case err == nil:
		a.state = state
		log.Infof("restored state: %d games, %d library entries", len(state.Games), len(state.Library))
	case errors.Is(err, errs.ErrStateNotFound):
		log.Info("no saved state, starting empty")
	default:
		log.Warnf("failed to restore state, starting empty: %v", err)
	}
	return a
}

// Snapshot returns a copy of the current state.
func (a *AnalysisUseCase) Snapshot() game.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Clone()
}

func (a *AnalysisUseCase) AddLibraryEntry(ctx context.Context, name, pgn string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := a.state.Clone()
	next.Library = append(next.Library, game.LibraryEntry{Name: name, Pgn: pgn})
	if err := a.commit(ctx, next); err != nil {
		return err
	}
	a.log.Infof("library entry %q added", name)

	return a.loadRecord(ctx, pgn)
}

func (a *AnalysisUseCase) LoadRecord(ctx context.Context, pgn string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loadRecord(ctx, pgn)
}

func (a *AnalysisUseCase) loadRecord(ctx context.Context, pgn string) error {
	newGame, err := ParsePgn(a.engine, pgn)
	if err != nil {
		a.log.Errorf("error loading pgn: %v", err)
		return err
	}

	merged := make([]game.Game, 0, len(a.state.Games)+1)
	sameLength := false
	for _, existing := range a.state.Games {
		m := MergeGames(existing, newGame)
		if len(m.Moves) == len(newGame.Moves) {
			sameLength = true
		}
		merged = append(merged, m)
	}
	if !sameLength {
		merged = append(merged, newGame)
	}
	for i := range merged {
		merged[i] = TagTranspositions(merged[i])
	}

	next := a.state.Clone()
	next.Games = merged
	next.Move = 0
	return a.commit(ctx, next)
}

// Clear drops all games. The library is kept.
func (a *AnalysisUseCase) Clear(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := a.state.Clone()
	next.Games = []game.Game{}
	next.Move = 0
	return a.commit(ctx, next)
}

// GoTo moves the cursor without range checks; callers own the bounds.
func (a *AnalysisUseCase) GoTo(ctx context.Context, index int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := a.state.Clone()
	next.Move = index
	return a.commit(ctx, next)
}

func (a *AnalysisUseCase) Advance(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := a.state.Clone()
	if len(next.Games) > 0 && next.Move < next.MaxMoves()-1 {
		next.Move++
	}
	return a.commit(ctx, next)
}

func (a *AnalysisUseCase) Retreat(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := a.state.Clone()
	next.Move = max(0, next.Move-1)
	return a.commit(ctx, next)
}

// ReplayLibrary loads every library entry in order. Entries that fail to parse are skipped.
func (a *AnalysisUseCase) ReplayLibrary(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	library := a.state.Clone().Library
	for _, entry := range library {
		err := a.loadRecord(ctx, entry.Pgn)
		if errors.Is(err, errs.ErrParse) {
			a.log.Warnf("skipping library entry %q: %v", entry.Name, err)
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Transpositions lists repeated positions for every game, in game order.
func (a *AnalysisUseCase) Transpositions() [][]game.Transposition {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := make([][]game.Transposition, 0, len(a.state.Games))
	for _, g := range a.state.Games {
		result = append(result, FindTranspositions(g))
	}
	return result
}

func (a *AnalysisUseCase) MoveGraph() game.MoveGraph {
	a.mu.Lock()
	defer a.mu.Unlock()
	return BuildMoveGraph(a.state.Games)
}

// Position loads the cursor position of the given game into the rules engine.
// A cursor outside the game's moves, or an unreadable stored position, shows the initial position.
func (a *AnalysisUseCase) Position(gameIndex int) (game.Board, error) {
	a.mu.Lock()
	if gameIndex < 0 || gameIndex >= len(a.state.Games) {
		a.mu.Unlock()
		return game.Board{}, errs.ErrGameNotFound
	}
	fen := ""
	moves := a.state.Games[gameIndex].Moves
	if cursor := a.state.Move; cursor >= 0 && cursor < len(moves) {
		fen = moves[cursor].Fen
	}
	a.mu.Unlock()

	board, err := a.engine.LoadPosition(fen)
	if err != nil && fen != "" {
		a.log.Warnf("game %d has an unreadable position %q, showing the initial one: %v", gameIndex, fen, err)
		return a.engine.LoadPosition("")
	}
	return board, err
}

func (a *AnalysisUseCase) commit(ctx context.Context, next game.State) error {
	if err := a.store.SaveState(ctx, next); err != nil {
		a.log.Errorf("failed to persist state: %v", err)
		return &errs.PersistenceError{Op: "save", Err: err}
	}
	a.state = next
	return nil
}
