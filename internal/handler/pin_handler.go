package handler

import (
	"net/http"

	"pinboard/internal/access"
	"pinboard/internal/middleware"
	"pinboard/internal/model"
	"pinboard/internal/repository"

	"github.com/gin-gonic/gin"
)

type PinHandler struct {
	pinRepo repository.PinRepositoryInterface
}

func NewPinHandler(pinRepo repository.PinRepositoryInterface) *PinHandler {
	return &PinHandler{pinRepo: pinRepo}
}

// PinForm is the form posted to /pin/ and /pin/{id}.
type PinForm struct {
	ImageURL string `form:"imgUrl"`
	Caption  string `form:"caption"`
	Cmd      string `form:"cmd"`
	Private  string `form:"private"`
}

// GetAll lists the caller's own pins.
func (h *PinHandler) GetAll(c *gin.Context) {
	caller := middleware.Caller(c)
	if caller == nil {
		redirect(c, "/")
		return
	}

	pins, err := h.pinRepo.GetOwned(c.Request.Context(), caller.ID)
	if err != nil {
		storeFailure(c, "failed to list pins", err)
		return
	}

	v := view(c, caller, "Your Pins")
	v["pins"] = pins
	c.HTML(http.StatusOK, "pinlist.html", v)
}

// GetByID shows one pin if the caller may see it.
func (h *PinHandler) GetByID(c *gin.Context) {
	caller := middleware.Caller(c)
	idStr := c.Param("id")

	pin, ok := h.load(c, idStr)
	if !ok {
		return
	}
	if !access.CanView(pin, caller) {
		redirect(c, "/")
		return
	}

	v := view(c, caller, idStr)
	v["id"] = idStr
	v["pin"] = pin
	v["editor"] = access.CanMutate(pin, caller)
	c.HTML(http.StatusOK, "pin.html", v)
}

// Create stores a new pin owned by the caller.
func (h *PinHandler) Create(c *gin.Context) {
	caller := middleware.Caller(c)
	if caller == nil {
		redirect(c, "/")
		return
	}

	var form PinForm
	if err := c.ShouldBind(&form); err != nil {
		redirect(c, "/")
		return
	}

	pin := &model.Pin{
		ImageURL: form.ImageURL,
		Caption:  form.Caption,
		OwnerID:  caller.ID,
		Private:  checkbox(form.Private),
	}
	if err := h.pinRepo.Create(c.Request.Context(), pin); err != nil {
		storeFailure(c, "failed to create pin", err)
		return
	}

	redirect(c, "/pin/"+pin.ID.String())
}

// Update overwrites a pin, or deletes it when cmd=delete. Only the owner gets through.
func (h *PinHandler) Update(c *gin.Context) {
	caller := middleware.Caller(c)
	idStr := c.Param("id")

	var form PinForm
	if err := c.ShouldBind(&form); err != nil {
		redirect(c, "/")
		return
	}

	pin, ok := h.load(c, idStr)
	if !ok {
		return
	}
	if !access.CanMutate(pin, caller) {
		redirect(c, "/")
		return
	}

	if form.Cmd == "delete" {
		// Boards that list this pin keep the reference.
		if err := h.pinRepo.Delete(c.Request.Context(), pin.ID); err != nil {
			storeFailure(c, "failed to delete pin", err)
			return
		}
		redirect(c, "/pin/")
		return
	}

	pin.ImageURL = form.ImageURL
	pin.Caption = form.Caption
	pin.Private = checkbox(form.Private)
	if err := h.pinRepo.Update(c.Request.Context(), pin); err != nil {
		storeFailure(c, "failed to update pin", err)
		return
	}

	redirect(c, "/pin/"+pin.ID.String())
}

// load fetches the pin named in the path. When it reports false the response
// has already been written: a redirect home for a bad or unknown id, or a 500.
func (h *PinHandler) load(c *gin.Context, idStr string) (*model.Pin, bool) {
	pinID, ok := parseID(idStr)
	if !ok {
		redirect(c, "/")
		return nil, false
	}

	pin, err := h.pinRepo.GetByID(c.Request.Context(), pinID)
	if err != nil {
		storeFailure(c, "failed to load pin", err)
		return nil, false
	}
	if pin == nil {
		redirect(c, "/")
		return nil, false
	}
	return pin, true
}
