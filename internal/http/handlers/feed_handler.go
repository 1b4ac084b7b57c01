package handlers

import (
	"stockroom/internal/domain"
	applog "stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"
	"stockroom/internal/wire"

	"github.com/gofiber/fiber/v2"
)

type FeedHandler struct {
	Feed            *services.FeedService
	Codec           *wire.FeedCodec
	OwnerScopedList bool
}

var feedPolicies = []Policy{IsAuthenticated, OwnerOrReadOnly}

func (h *FeedHandler) List(c *fiber.Ctx) error {
	var (
		items []domain.FeedItem
		err   error
	)
	if h.OwnerScopedList {
		items, err = h.Feed.ListByOwner(caller(c).ID)
	} else {
		items, err = h.Feed.List()
	}
	if err != nil {
		return fail(c, "feed.list", err)
	}
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		out = append(out, h.Codec.ToWire(it))
	}
	return c.JSON(out)
}

func (h *FeedHandler) Retrieve(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return detail(c, fiber.StatusNotFound, "not found")
	}
	it, err := h.Feed.Get(id)
	if err != nil {
		return fail(c, "feed.retrieve", err)
	}
	if err := permit(caller(c), it.OwnerID, ActionRetrieve, feedPolicies); err != nil {
		return fail(c, "feed.retrieve", err)
	}
	return c.JSON(h.Codec.ToWire(it))
}

func (h *FeedHandler) Create(c *fiber.Ctx) error {
	body, err := decodeBody(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "malformed JSON body")
	}
	draft, verr := h.Codec.FromWire(body, false)
	if verr != nil {
		return fail(c, "feed.create", verr)
	}
	it, err := h.Feed.Create(caller(c).ID, draft)
	if err != nil {
		return fail(c, "feed.create", err)
	}
	applog.Audit(c, "feed.create", map[string]any{"id": it.ID, "owner": it.OwnerID})
	return c.Status(fiber.StatusCreated).JSON(h.Codec.ToWire(it))
}

func (h *FeedHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return detail(c, fiber.StatusNotFound, "not found")
	}
	it, err := h.Feed.Get(id)
	if err != nil {
		return fail(c, "feed.update", err)
	}
	if err := permit(caller(c), it.OwnerID, ActionUpdate, feedPolicies); err != nil {
		return fail(c, "feed.update", err)
	}
	body, err := decodeBody(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "malformed JSON body")
	}
	draft, verr := h.Codec.FromWire(body, c.Method() == fiber.MethodPatch)
	if verr != nil {
		return fail(c, "feed.update", verr)
	}
	it, err = h.Feed.Update(it, draft)
	if err != nil {
		return fail(c, "feed.update", err)
	}
	applog.Audit(c, "feed.update", map[string]any{"id": it.ID})
	return c.JSON(h.Codec.ToWire(it))
}

func (h *FeedHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return detail(c, fiber.StatusNotFound, "not found")
	}
	it, err := h.Feed.Get(id)
	if err != nil {
		return fail(c, "feed.delete", err)
	}
	if err := permit(caller(c), it.OwnerID, ActionDelete, feedPolicies); err != nil {
		return fail(c, "feed.delete", err)
	}
	if err := h.Feed.Delete(id); err != nil {
		return fail(c, "feed.delete", err)
	}
	applog.Audit(c, "feed.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
