package game

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"chess_analysis/internal/bootstrap"
	errs "chess_analysis/internal/errors"
	"chess_analysis/internal/httpresponse"
	"chess_analysis/internal/middleware"
	gameuc "chess_analysis/internal/usecase/game"
	"chess_analysis/internal/utils"
)

type GameHandler struct {
	cfg    bootstrap.Config
	log    *zap.SugaredLogger
	gameUC *gameuc.AnalysisUseCase
	feed   *StateFeed
}

type AddLibraryEntryRequest struct {
	Name string `json:"name" validate:"required"`
	Pgn  string `json:"pgn" validate:"required"`
}

type LoadRecordRequest struct {
	Pgn string `json:"pgn" validate:"required"`
}

type GoToRequest struct {
	Index *int `json:"index" validate:"required"`
}

func NewGameHandler(cfg bootstrap.Config, log *zap.SugaredLogger, gameUC *gameuc.AnalysisUseCase) *GameHandler {
	return &GameHandler{
		cfg:    cfg,
		log:    log,
		gameUC: gameUC,
		feed:   NewStateFeed(log),
	}
}

func (g *GameHandler) Routes(r chi.Router) {
	r.Get("/state", g.HandleGetState)
	r.Post("/library", g.HandleAddLibraryEntry)
	r.Post("/library/replay", g.HandleReplayLibrary)
	r.Post("/games", g.HandleLoadRecord)
	r.Delete("/games", g.HandleClear)
	r.Post("/cursor", g.HandleGoTo)
	r.Post("/cursor/next", g.HandleAdvance)
	r.Post("/cursor/prev", g.HandleRetreat)
	r.Get("/transpositions", g.HandleTranspositions)
	r.Get("/graph", g.HandleGraph)
	r.Get("/position", g.HandlePosition)
	r.Get("/ws", g.HandleStateFeed)
}

// HandleGetState godoc
// @Summary Current games, library and cursor
// @Tags game
// @Produce json
// @Success 200 {object} game.State
// @Router /state [get]
func (g *GameHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, g.gameUC.Snapshot())
}

// HandleAddLibraryEntry godoc
// @Summary Store a named PGN in the library and load it
// @Tags library
// @Accept json
// @Produce json
// @Param entry body AddLibraryEntryRequest true "Library entry"
// @Success 200 {object} game.State
// @Failure 400 {object} httpresponse.ErrorResponse
// @Failure 500 {object} httpresponse.ErrorResponse
// @Router /library [post]
func (g *GameHandler) HandleAddLibraryEntry(w http.ResponseWriter, r *http.Request) {
	var req AddLibraryEntryRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		g.writeDecodeError(w, r, "AddLibraryEntry", err)
		return
	}

	g.run(w, r, func(ctx context.Context) error {
		return g.gameUC.AddLibraryEntry(ctx, req.Name, req.Pgn)
	})
}

// HandleReplayLibrary godoc
// @Summary Load every library entry in order
// @Tags library
// @Produce json
// @Success 200 {object} game.State
// @Failure 500 {object} httpresponse.ErrorResponse
// @Router /library/replay [post]
func (g *GameHandler) HandleReplayLibrary(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, g.gameUC.ReplayLibrary)
}

// HandleLoadRecord godoc
// @Summary Parse a PGN and merge it into the loaded games
// @Tags game
// @Accept json
// @Produce json
// @Param record body LoadRecordRequest true "PGN text"
// @Success 200 {object} game.State
// @Failure 400 {object} httpresponse.ErrorResponse
// @Failure 500 {object} httpresponse.ErrorResponse
// @Router /games [post]
func (g *GameHandler) HandleLoadRecord(w http.ResponseWriter, r *http.Request) {
	var req LoadRecordRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		g.writeDecodeError(w, r, "LoadRecord", err)
		return
	}

	g.run(w, r, func(ctx context.Context) error {
		return g.gameUC.LoadRecord(ctx, req.Pgn)
	})
}

// HandleClear godoc
// @Summary Drop all loaded games, keeping the library
// @Tags game
// @Produce json
// @Success 200 {object} game.State
// @Router /games [delete]
func (g *GameHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, g.gameUC.Clear)
}

func (g *GameHandler) HandleGoTo(w http.ResponseWriter, r *http.Request) {
	var req GoToRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		g.writeDecodeError(w, r, "GoTo", err)
		return
	}

	g.run(w, r, func(ctx context.Context) error {
		return g.gameUC.GoTo(ctx, *req.Index)
	})
}

func (g *GameHandler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, g.gameUC.Advance)
}

func (g *GameHandler) HandleRetreat(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, g.gameUC.Retreat)
}

func (g *GameHandler) HandleTranspositions(w http.ResponseWriter, r *http.Request) {
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, g.gameUC.Transpositions())
}

func (g *GameHandler) HandleGraph(w http.ResponseWriter, r *http.Request) {
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, g.gameUC.MoveGraph())
}

// HandlePosition godoc
// @Summary Board at the cursor for one game
// @Tags game
// @Produce json
// @Param game query int false "Game index, default 0"
// @Success 200 {object} game.Board
// @Failure 400 {object} httpresponse.ErrorResponse
// @Failure 404 {object} httpresponse.ErrorResponse
// @Router /position [get]
func (g *GameHandler) HandlePosition(w http.ResponseWriter, r *http.Request) {
	gameIndex := 0
	if raw := r.URL.Query().Get("game"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			g.requestLog(r).Warnf("Position: bad game index %q", raw)
			httpresponse.WriteError(w, http.StatusBadRequest, "game must be an integer")
			return
		}
		gameIndex = parsed
	}

	board, err := g.gameUC.Position(gameIndex)
	if err != nil {
		g.writeError(w, r, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, board)
}

// run executes a command and answers with the resulting state. Successful
// commands are also pushed to the state feed.
func (g *GameHandler) run(w http.ResponseWriter, r *http.Request, command func(ctx context.Context) error) {
	err := command(r.Context())
	state := g.gameUC.Snapshot()
	if err != nil {
		g.writeError(w, r, err)
		if errors.Is(err, errs.ErrParse) {
			// a library entry may have been stored before parsing failed
			g.feed.Broadcast(state)
		}
		return
	}

	g.feed.Broadcast(state)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, state)
}

func (g *GameHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := g.requestLog(r)
	switch {
	case errors.Is(err, errs.ErrParse):
		log.Warn(err)
		httpresponse.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrGameNotFound):
		httpresponse.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrPersistence):
		log.Error(err)
		httpresponse.WriteError(w, http.StatusInternalServerError, errs.ErrPersistence.Error())
	default:
		log.Error(err)
		httpresponse.WriteError(w, http.StatusInternalServerError, errs.ErrInternal.Error())
	}
}

func (g *GameHandler) writeDecodeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	g.requestLog(r).Errorf("%s: %v", op, err)
	if errors.Is(err, utils.ErrMalformedJSON) {
		httpresponse.WriteError(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}
	httpresponse.WriteError(w, http.StatusBadRequest, err.Error())
}

func (g *GameHandler) requestLog(r *http.Request) *zap.SugaredLogger {
	return g.log.With("request_id", middleware.GetRequestID(r.Context()))
}
