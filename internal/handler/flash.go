package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog"
)

const flashKey = "flash"

// Flash carries a one-shot status message from a form submission to the page
// rendered after the redirect.
type Flash struct {
	store *session.Store
}

// NewFlash constructs a flash helper over the session store.
func NewFlash(store *session.Store) *Flash {
	return &Flash{store: store}
}

// Set stores message for the next page view of this client.
func (f *Flash) Set(c *fiber.Ctx, message string) error {
	sess, err := f.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(flashKey, message)
	return sess.Save()
}

// Pop returns the pending message, if any, and clears it.
func (f *Flash) Pop(c *fiber.Ctx) (string, error) {
	sess, err := f.store.Get(c)
	if err != nil {
		return "", err
	}

	message, _ := sess.Get(flashKey).(string)
	if message == "" {
		return "", nil
	}

	sess.Delete(flashKey)
	return message, sess.Save()
}

// Redirect flashes the outcome of a mutation and redirects to target.
// Unexpected errors are logged and handed to the error handler instead.
func (f *Flash) Redirect(c *fiber.Ctx, logger zerolog.Logger, target string, err error, success string) error {
	message, ok := userMessage(err, success)
	if !ok {
		requestLogger(logger, c).Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return err
	}

	if err := f.Set(c, message); err != nil {
		return err
	}
	return c.Redirect(target, fiber.StatusFound)
}

// render pops the pending flash into data and renders view.
func (f *Flash) render(c *fiber.Ctx, view string, data fiber.Map) error {
	message, err := f.Pop(c)
	if err != nil {
		return err
	}
	data["Flash"] = message
	return c.Render(view, data)
}
