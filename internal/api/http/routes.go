package httpapi

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pixelpet/internal/game"
	"pixelpet/internal/pet"
	"pixelpet/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, g *game.Game) {
	v1 := app.Group("/api/v1")

	v1.Post("/pets", func(c *fiber.Ctx) error {
		var req createPetRequest
		if err := bindJSON(c, &req); err != nil {
			return err
		}
		p := g.Registry().Create(req.Name, req.Kind)
		return c.Status(fiber.StatusCreated).JSON(newPetView(p))
	})

	v1.Get("/pets", func(c *fiber.Ctx) error {
		pets := g.Registry().List()
		views := make([]petView, 0, len(pets))
		for _, p := range pets {
			views = append(views, newPetView(p))
		}
		return c.JSON(views)
	})

	v1.Get("/pets/:id", func(c *fiber.Ctx) error {
		p, ok := g.Registry().Get(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "pet not found")
		}
		return c.JSON(newPetView(p))
	})

	v1.Get("/pets/:id/cooldowns", func(c *fiber.Ctx) error {
		p, ok := g.Registry().Get(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "pet not found")
		}
		now := g.Now()
		out := fiber.Map{}
		for _, a := range []pet.Action{pet.ActionFeed, pet.ActionClean, pet.ActionPlay} {
			out[string(a)] = int(math.Ceil(p.RemainingCooldown(a, now).Seconds()))
		}
		return c.JSON(out)
	})

	v1.Post("/pets/:id/feed", func(c *fiber.Ctx) error {
		var req feedRequest
		if err := bindJSON(c, &req); err != nil {
			return err
		}
		food := pet.FoodBread
		if req.Food != "" {
			food = pet.FoodType(req.Food)
		}
		return respond(c, func(id string) (pet.Pet, error) { return g.Feed(id, food) })
	})

	v1.Post("/pets/:id/drink", func(c *fiber.Ctx) error {
		return respond(c, g.Drink)
	})

	v1.Post("/pets/:id/clean", func(c *fiber.Ctx) error {
		return respond(c, g.Clean)
	})

	v1.Post("/pets/:id/play", func(c *fiber.Ctx) error {
		return respond(c, g.Play)
	})

	v1.Post("/pets/:id/exercise", func(c *fiber.Ctx) error {
		var req exerciseRequest
		if err := bindJSON(c, &req); err != nil {
			return err
		}
		return respond(c, func(id string) (pet.Pet, error) { return g.Exercise(id, req.Amount) })
	})

	v1.Post("/pets/:id/care", func(c *fiber.Ctx) error {
		return respond(c, g.Care)
	})

	v1.Get("/world", func(c *fiber.Ctx) error {
		resp := worldResponse{
			Time:   g.Now(),
			Night:  g.IsNight(),
			Period: string(g.Period()),
			Effect: g.Effect(),
		}
		if data, ok := g.Weather(); ok {
			resp.Weather = &data
		}
		return c.JSON(resp)
	})

	v1.Get("/alerts", func(c *fiber.Ctx) error {
		return c.JSON(g.Alerts())
	})

	v1.Delete("/alerts", func(c *fiber.Ctx) error {
		g.DismissAlerts()
		return c.SendStatus(fiber.StatusNoContent)
	})
}

// respond runs an action on the :id pet and maps game errors to HTTP errors.
func respond(c *fiber.Ctx, action func(id string) (pet.Pet, error)) error {
	p, err := action(c.Params("id"))
	if err != nil {
		var cd *game.CooldownError
		switch {
		case errors.Is(err, game.ErrUnknownPet):
			return fiber.NewError(fiber.StatusNotFound, "pet not found")
		case errors.As(err, &cd):
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(cd.Remaining.Seconds()))))
			return fiber.NewError(fiber.StatusTooManyRequests, err.Error())
		default:
			return err
		}
	}
	return c.JSON(newPetView(p))
}

// bindJSON parses an optional JSON body into req and validates it.
func bindJSON(c *fiber.Ctx, req interface{}) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

type createPetRequest struct {
	Name string `json:"name" validate:"omitempty,max=32"`
	Kind string `json:"kind" validate:"omitempty,max=32"`
}

type feedRequest struct {
	Food string `json:"food" validate:"omitempty,oneof=bread fruit water candy"`
}

type exerciseRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0,lte=100"`
}

type petView struct {
	pet.Pet
	Status   string `json:"status"`
	FormName string `json:"formName"`
}

func newPetView(p pet.Pet) petView {
	return petView{
		Pet:      p,
		Status:   pet.GetStatusWithLabel(p),
		FormName: p.GetFormName(),
	}
}

type worldResponse struct {
	Time    time.Time      `json:"time"`
	Night   bool           `json:"night"`
	Period  string         `json:"period"`
	Weather *weather.Data  `json:"weather"`
	Effect  weather.Effect `json:"effect"`
}
