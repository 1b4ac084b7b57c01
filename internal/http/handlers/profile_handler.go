package handlers

import (
	applog "stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"
	"stockroom/internal/wire"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	Profiles *services.ProfileService
	Codec    *wire.ProfileCodec
}

var profilePolicies = []Policy{IsAuthenticated, SelfOnly}

// Register is the only unauthenticated write: it creates an account.
func (h *ProfileHandler) Register(c *fiber.Ctx) error {
	body, err := decodeBody(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "malformed JSON body")
	}
	draft, verr := h.Codec.FromWire(body, false)
	if verr != nil {
		return fail(c, "profile.register", verr)
	}
	u, err := h.Profiles.Register(draft)
	if err != nil {
		return fail(c, "profile.register", err)
	}
	applog.Audit(c, "profile.register", map[string]any{"user_id": u.ID})
	return c.Status(fiber.StatusCreated).JSON(h.Codec.ToWire(*u))
}

func (h *ProfileHandler) List(c *fiber.Ctx) error {
	users, err := h.Profiles.List()
	if err != nil {
		return fail(c, "profile.list", err)
	}
	out := make([]map[string]any, 0, len(users))
	for _, u := range users {
		out = append(out, h.Codec.ToWire(u))
	}
	return c.JSON(out)
}

func (h *ProfileHandler) Retrieve(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return detail(c, fiber.StatusNotFound, "not found")
	}
	u, err := h.Profiles.Get(id)
	if err != nil {
		return fail(c, "profile.retrieve", err)
	}
	if err := permit(caller(c), u.ID, ActionRetrieve, profilePolicies); err != nil {
		return fail(c, "profile.retrieve", err)
	}
	return c.JSON(h.Codec.ToWire(*u))
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return detail(c, fiber.StatusNotFound, "not found")
	}
	u, err := h.Profiles.Get(id)
	if err != nil {
		return fail(c, "profile.update", err)
	}
	if err := permit(caller(c), u.ID, ActionUpdate, profilePolicies); err != nil {
		return fail(c, "profile.update", err)
	}
	body, err := decodeBody(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "malformed JSON body")
	}
	draft, verr := h.Codec.FromWire(body, c.Method() == fiber.MethodPatch)
	if verr != nil {
		return fail(c, "profile.update", verr)
	}
	u, err = h.Profiles.Update(*u, draft)
	if err != nil {
		return fail(c, "profile.update", err)
	}
	applog.Audit(c, "profile.update", map[string]any{"user_id": u.ID})
	return c.JSON(h.Codec.ToWire(*u))
}

func (h *ProfileHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return detail(c, fiber.StatusNotFound, "not found")
	}
	u, err := h.Profiles.Get(id)
	if err != nil {
		return fail(c, "profile.delete", err)
	}
	if err := permit(caller(c), u.ID, ActionDelete, profilePolicies); err != nil {
		return fail(c, "profile.delete", err)
	}
	if err := h.Profiles.Delete(id); err != nil {
		return fail(c, "profile.delete", err)
	}
	applog.Audit(c, "profile.delete", map[string]any{"user_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
