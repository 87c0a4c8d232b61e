package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"pinboard/internal/access"
	"pinboard/internal/middleware"
	"pinboard/internal/model"
	"pinboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const jsonSuffix = ".json"

type BoardHandler struct {
	boardRepo     repository.BoardRepositoryInterface
	pinRepo       repository.PinRepositoryInterface
	placementRepo repository.PlacementRepositoryInterface
}

func NewBoardHandler(
	boardRepo repository.BoardRepositoryInterface,
	pinRepo repository.PinRepositoryInterface,
	placementRepo repository.PlacementRepositoryInterface,
) *BoardHandler {
	return &BoardHandler{
		boardRepo:     boardRepo,
		pinRepo:       pinRepo,
		placementRepo: placementRepo,
	}
}

// BoardForm is the form posted to /board/ and /board/{id}. addPin, deletePin
// and editPin are each optional and applied independently.
type BoardForm struct {
	Title     string `form:"title"`
	Cmd       string `form:"cmd"`
	Private   string `form:"private"`
	AddPin    string `form:"addPin"`
	DeletePin string `form:"deletePin"`
	RemovePin string `form:"removePin"`
	EditPin   string `form:"editPin"`
	X         string `form:"x"`
	Y         string `form:"y"`
}

type BoardPinResponse struct {
	PinID   string `json:"pinid"`
	ImgURL  string `json:"imgUrl"`
	Caption string `json:"caption"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
}

type BoardResponse struct {
	BoardID string             `json:"boardid"`
	Title   string             `json:"title"`
	Private bool               `json:"private"`
	Pins    []BoardPinResponse `json:"pins"`
}

// GetAll lists the caller's own boards.
func (h *BoardHandler) GetAll(c *gin.Context) {
	caller := middleware.Caller(c)
	if caller == nil {
		redirect(c, "/")
		return
	}

	boards, err := h.boardRepo.GetOwned(c.Request.Context(), caller.ID)
	if err != nil {
		storeFailure(c, "failed to list boards", err)
		return
	}

	v := view(c, caller, "Your Boards")
	v["boards"] = boards
	c.HTML(http.StatusOK, "boardlist.html", v)
}

// GetByID shows a board with its pins and, for the caller, the pins they could add.
// A ".json" suffix on the id serves the board as JSON instead.
func (h *BoardHandler) GetByID(c *gin.Context) {
	idStr := c.Param("id")
	if strings.HasSuffix(idStr, jsonSuffix) {
		h.GetJSON(c)
		return
	}
	caller := middleware.Caller(c)
	ctx := c.Request.Context()

	board, ok := h.load(c, idStr)
	if !ok {
		return
	}
	if !access.CanView(board, caller) {
		redirect(c, "/")
		return
	}

	myPins := []model.Pin{}
	if caller != nil {
		owned, err := h.pinRepo.GetOwned(ctx, caller.ID)
		if err != nil {
			storeFailure(c, "failed to list pins", err)
			return
		}
		myPins = owned
	}

	boardPins, err := h.resolvePins(ctx, board)
	if err != nil {
		storeFailure(c, "failed to resolve board pins", err)
		return
	}

	v := view(c, caller, idStr)
	v["id"] = idStr
	v["board"] = board
	v["myPins"] = myPins
	v["boardPins"] = boardPins
	v["editor"] = access.CanMutate(board, caller)
	c.HTML(http.StatusOK, "board.html", v)
}

// GetJSON godoc
// @Summary      Get a board as JSON
// @Description  Board title, privacy and its pins with their canvas coordinates. Private boards are only served to their owner.
// @Tags         Boards
// @Produce      json
// @Param        id   path      string  true  "Board ID followed by .json"
// @Success      200  {object}  BoardResponse
// @Failure      404  {object}  map[string]string
// @Router       /board/{id}.json [get]
func (h *BoardHandler) GetJSON(c *gin.Context) {
	caller := middleware.Caller(c)
	ctx := c.Request.Context()

	boardID, ok := parseID(strings.TrimSuffix(c.Param("id"), jsonSuffix))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	board, err := h.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board"})
		return
	}
	if board == nil || !access.CanView(board, caller) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	pins, err := h.resolvePins(ctx, board)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pins"})
		return
	}
	placements, err := h.placementRepo.ListByBoard(ctx, board.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve placements"})
		return
	}
	positions := make(map[uuid.UUID]model.Placement, len(placements))
	for _, p := range placements {
		positions[p.PinID] = p
	}

	response := BoardResponse{
		BoardID: board.ID.String(),
		Title:   board.Title,
		Private: board.Private,
		Pins:    make([]BoardPinResponse, len(pins)),
	}
	for i, pin := range pins {
		pos := positions[pin.ID]
		response.Pins[i] = BoardPinResponse{
			PinID:   pin.ID.String(),
			ImgURL:  pin.ImageURL,
			Caption: pin.Caption,
			X:       pos.X,
			Y:       pos.Y,
		}
	}

	c.JSON(http.StatusOK, response)
}

// Create stores a new board owned by the caller.
func (h *BoardHandler) Create(c *gin.Context) {
	caller := middleware.Caller(c)
	if caller == nil {
		redirect(c, "/")
		return
	}

	var form BoardForm
	if err := c.ShouldBind(&form); err != nil {
		redirect(c, "/")
		return
	}

	board := &model.Board{
		Title:   form.Title,
		OwnerID: caller.ID,
		Private: checkbox(form.Private),
	}
	if err := h.boardRepo.Create(c.Request.Context(), board); err != nil {
		storeFailure(c, "failed to create board", err)
		return
	}

	redirect(c, "/board/"+board.ID.String())
}

// Update edits a board, or deletes it when cmd=delete. Pin membership and
// placement edits run before the title and privacy are overwritten, all in
// one save.
func (h *BoardHandler) Update(c *gin.Context) {
	caller := middleware.Caller(c)
	ctx := c.Request.Context()

	var form BoardForm
	if err := c.ShouldBind(&form); err != nil {
		redirect(c, "/")
		return
	}

	board, ok := h.load(c, c.Param("id"))
	if !ok {
		return
	}
	if !access.CanMutate(board, caller) {
		redirect(c, "/")
		return
	}

	if form.Cmd == "delete" {
		// The board's pins are left alone.
		if err := h.boardRepo.Delete(ctx, board.ID); err != nil {
			storeFailure(c, "failed to delete board", err)
			return
		}
		redirect(c, "/board/")
		return
	}

	toAdd, err := h.ownedPin(ctx, caller, form.AddPin)
	if err != nil {
		storeFailure(c, "failed to load pin", err)
		return
	}
	if toAdd != nil {
		board.AddPin(toAdd.ID)
	}

	removeID := form.DeletePin
	if removeID == "" {
		removeID = form.RemovePin
	}
	toRemove, err := h.ownedPin(ctx, caller, removeID)
	if err != nil {
		storeFailure(c, "failed to load pin", err)
		return
	}
	if toRemove != nil && board.RemovePin(toRemove.ID) {
		if err := h.placementRepo.Delete(ctx, board.ID, toRemove.ID); err != nil {
			storeFailure(c, "failed to delete placement", err)
			return
		}
	}

	if placement, ok := placementFromForm(board, form); ok {
		if err := h.placementRepo.Upsert(ctx, placement); err != nil {
			storeFailure(c, "failed to save placement", err)
			return
		}
	}

	board.Title = form.Title
	board.Private = privacyFromForm(board, form)
	if err := h.boardRepo.Update(ctx, board); err != nil {
		storeFailure(c, "failed to update board", err)
		return
	}

	redirect(c, "/board/"+board.ID.String())
}

// load fetches the board named in the path, answering like PinHandler.load
// when it reports false.
func (h *BoardHandler) load(c *gin.Context, idStr string) (*model.Board, bool) {
	boardID, ok := parseID(idStr)
	if !ok {
		redirect(c, "/")
		return nil, false
	}

	board, err := h.boardRepo.GetByID(c.Request.Context(), boardID)
	if err != nil {
		storeFailure(c, "failed to load board", err)
		return nil, false
	}
	if board == nil {
		redirect(c, "/")
		return nil, false
	}
	return board, true
}

// ownedPin returns the pin named by a form value if it exists and belongs to
// the caller, and nil otherwise.
func (h *BoardHandler) ownedPin(ctx context.Context, caller *model.Identity, raw string) (*model.Pin, error) {
	pinID, ok := parseID(raw)
	if !ok {
		return nil, nil
	}
	pin, err := h.pinRepo.GetByID(ctx, pinID)
	if err != nil {
		return nil, err
	}
	if pin == nil || !caller.Is(pin.OwnerID) {
		return nil, nil
	}
	return pin, nil
}

// resolvePins looks up the board's pins in board order. References to pins
// that no longer exist are dropped.
func (h *BoardHandler) resolvePins(ctx context.Context, board *model.Board) ([]model.Pin, error) {
	ids := board.PinUUIDs()
	if len(ids) == 0 {
		return []model.Pin{}, nil
	}

	found, err := h.pinRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]model.Pin, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	pins := make([]model.Pin, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			pins = append(pins, p)
		}
	}
	return pins, nil
}

// placementFromForm reads editPin, x and y. It reports false unless the pin
// is on the board and both coordinates are integers.
func placementFromForm(board *model.Board, form BoardForm) (*model.Placement, bool) {
	pinID, ok := parseID(form.EditPin)
	if !ok || !board.HasPin(pinID) {
		return nil, false
	}
	x, err := strconv.Atoi(form.X)
	if err != nil {
		return nil, false
	}
	y, err := strconv.Atoi(form.Y)
	if err != nil {
		return nil, false
	}
	return &model.Placement{BoardID: board.ID, PinID: pinID, X: x, Y: y}, true
}

// privacyFromForm reads the private checkbox. A canvas move (editPin set)
// echoes the board's privacy as "true"/"false" rather than a checkbox, so
// there the flag can only be switched on, never off.
func privacyFromForm(board *model.Board, form BoardForm) bool {
	if form.EditPin == "" {
		return checkbox(form.Private)
	}
	return board.Private || checkbox(form.Private)
}
