/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

// Package server exposes the routing layer over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/campushub/dualstore"
	dserrors "github.com/campushub/dualstore/errors"
	"github.com/campushub/dualstore/storagemodels"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Restorer resets store contents to the baseline dataset.
type Restorer interface {
	RestoreTabular(ctx context.Context) error
	RestoreDocument(ctx context.Context) error
	RestoreAll(ctx context.Context) error
}

// Deps wires the HTTP layer to the rest of the service. Seeder, Tabular and
// Documents may be nil; the routes depending on them then report the store
// as unavailable.
type Deps struct {
	Router    *dualstore.Router
	Seeder    Restorer
	Tabular   Pinger
	Documents Pinger
	Log       *slog.Logger
}

type server struct {
	deps Deps
	log  *slog.Logger
}

// New builds the HTTP application.
func New(deps Deps) *fiber.App {
	log := deps.Log
	if log == nil {
		log = slog.Default()
	}
	s := &server{deps: deps, log: log}

	app := fiber.New(fiber.Config{
		ErrorHandler: s.handleError,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", s.health)

	api := app.Group("/api")
	api.Post("/admin/restore", s.restore)
	api.Get("/:entityType", s.list)
	api.Get("/:entityType/join", s.join)
	api.Post("/:entityType", s.create)
	api.Put("/:entityType/:id", s.update)
	api.Delete("/:entityType/:id", s.delete)

	return app
}

// handleError maps domain errors to HTTP statuses. Anything unrecognized is
// an internal error and is logged with its cause; the client sees a generic
// message.
func (s *server) handleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	switch {
	case dserrors.IsUnknownEntityType(err),
		dserrors.IsNoUpdatableFields(err),
		dserrors.IsValidationError(err),
		errors.Is(err, dserrors.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})

	case dserrors.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})

	case dserrors.IsHasDependents(err):
		body := fiber.Map{"error": err.Error()}
		var depErr *dserrors.DependentsError
		if errors.As(err, &depErr) {
			body["dependents"] = depErr.Counts
		}
		return c.Status(fiber.StatusConflict).JSON(body)

	case dserrors.IsStoreUnavailable(err):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})

	default:
		s.log.Error("request failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}

func (s *server) health(c *fiber.Ctx) error {
	ctx := c.UserContext()
	status := fiber.StatusOK
	stores := fiber.Map{}

	if s.deps.Tabular != nil && s.deps.Tabular.Ping(ctx) == nil {
		stores["tabular"] = "connected"
	} else {
		stores["tabular"] = "unavailable"
		status = fiber.StatusServiceUnavailable
	}

	// The document store connects in the background at boot; not being up
	// yet is a degraded state, not a failed one.
	if s.deps.Documents != nil && s.deps.Documents.Ping(ctx) == nil {
		stores["document"] = "connected"
	} else {
		stores["document"] = "connecting"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":  "OK",
		"version": dualstore.GetVersionInfo(),
		"stores":  stores,
	})
}

func (s *server) list(c *fiber.Ctx) error {
	rs, err := s.deps.Router.List(c.UserContext(), c.Params("entityType"))
	if err != nil {
		return err
	}

	switch storagemodels.View(c.Query("view", string(storagemodels.ViewAll))) {
	case storagemodels.ViewTabular:
		return c.JSON(fiber.Map{"data": rs.Tabular, "source": storagemodels.OriginTabular})
	case storagemodels.ViewDocument:
		return c.JSON(fiber.Map{"data": rs.Document, "source": storagemodels.OriginDocument})
	case storagemodels.ViewCombined:
		if len(rs.Combined) > 0 {
			return c.JSON(fiber.Map{"data": rs.Combined, "source": storagemodels.ViewCombined})
		}
		return c.JSON(rs)
	default:
		return c.JSON(rs)
	}
}

func (s *server) join(c *fiber.Ctx) error {
	joined, err := s.deps.Router.Join(c.UserContext(), c.Params("entityType"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": joined, "source": "both stores"})
}

func (s *server) create(c *fiber.Ctx) error {
	entityType := c.Params("entityType")

	payload := storagemodels.Record{}
	if err := c.BodyParser(&payload); err != nil {
		return dserrors.NewValidationError("", "malformed request body")
	}

	target := storagemodels.StoreTarget(c.Query("store"))
	switch target {
	case storagemodels.TargetAuto, storagemodels.TargetTabular, storagemodels.TargetDocument:
	default:
		return dserrors.NewValidationError("store", "unknown store "+string(target))
	}

	rec, err := s.deps.Router.Create(c.UserContext(), entityType, payload, target)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": entityType + " created successfully",
		"data":    rec,
	})
}

func (s *server) update(c *fiber.Ctx) error {
	entityType := c.Params("entityType")

	payload := storagemodels.Record{}
	if err := c.BodyParser(&payload); err != nil {
		return dserrors.NewValidationError("", "malformed request body")
	}

	rec, err := s.deps.Router.Update(c.UserContext(), entityType, c.Params("id"), payload)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": entityType + " updated successfully",
		"data":    rec,
	})
}

func (s *server) delete(c *fiber.Ctx) error {
	entityType := c.Params("entityType")

	opts, err := deleteOptionsFromQuery(c)
	if err != nil {
		return err
	}

	rec, err := s.deps.Router.Delete(c.UserContext(), entityType, c.Params("id"), opts)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": entityType + " deleted successfully",
		"data":    rec,
	})
}

// deleteOptionsFromQuery reads the referential policy off the query string.
// reassignTo=null selects nullify; any other value must parse as an integer
// identity.
func deleteOptionsFromQuery(c *fiber.Ctx) (storagemodels.DeleteOptions, error) {
	var opts storagemodels.DeleteOptions

	switch c.Query("cascade") {
	case "true", "1":
		opts.Cascade = true
	}

	// Absent and explicit null are different: only the query args can tell
	// them apart.
	if args := c.Request().URI().QueryArgs(); args.Has("reassignTo") {
		opts.Reassign = true
		if raw := string(args.Peek("reassignTo")); raw != "null" {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return opts, dserrors.NewValidationError("reassignTo", "must be an integer identity or null")
			}
			opts.ReassignTo = &n
		}
	}
	return opts, nil
}

func (s *server) restore(c *fiber.Ctx) error {
	if s.deps.Seeder == nil {
		return dserrors.NewStoreUnavailableError("seed")
	}

	target := c.Query("target", "all")
	ctx := c.UserContext()

	var err error
	switch target {
	case "tabular":
		err = s.deps.Seeder.RestoreTabular(ctx)
	case "document":
		err = s.deps.Seeder.RestoreDocument(ctx)
	case "all":
		err = s.deps.Seeder.RestoreAll(ctx)
	default:
		return dserrors.NewValidationError("target", "must be tabular, document, or all")
	}
	if err != nil {
		return err
	}

	s.log.Info("stores restored", "target", target)
	return c.JSON(fiber.Map{"message": "successfully restored " + target})
}
