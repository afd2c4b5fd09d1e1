package handler

import (
	"net/http"

	"github.com/ashchan-dev/ashchan/internal/middleware"
	"github.com/ashchan-dev/ashchan/internal/utils"
)

type createBoardRequest struct {
	Name        string `validate:"required" json:"name"`
	Description string `json:"description"`
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var body createBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	actor := middleware.UserIdFromContext(r)
	board, err := h.board.Create(actor, body.Name, body.Description)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, board)
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	boardUuid, err := parseUuidParam(r, "board")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Get(boardUuid)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, board)
}

// GetBoards answers the cursor-paginated board listing. All four
// window parameters are optional.
func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	var params [4]*int
	for i, name := range []string{"after", "before", "first", "last"} {
		val, err := optionalIntQuery(r, name)
		if err != nil {
			utils.WriteErrorAndStatusCode(w, err)
			return
		}
		params[i] = val
	}

	conn, err := h.board.List(params[0], params[1], params[2], params[3])
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, conn)
}

func (h *Handler) SearchBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.board.SearchByKeyword(r.URL.Query().Get("q"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, boards)
}

func (h *Handler) GetBoardThreads(w http.ResponseWriter, r *http.Request) {
	boardUuid, err := parseUuidParam(r, "board")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	threads, err := h.board.ChildThreads(boardUuid)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, threads)
}
