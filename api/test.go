package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/vianuedu/backend/core/student"
	"github.com/vianuedu/backend/core/testlib"
)

type testApi struct {
	svc *testlib.Service
}

func registerTestAPI(g *echo.Group, svc *testlib.Service) {
	api := testApi{svc: svc}

	tg := g.Group("/tests")
	tg.POST("", api.create)
	tg.GET("", api.query)

	// detail endpoints
	dg := tg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.GET("/questions", api.questions)
	dg.GET("/questions/:num/choices", api.choices)
	dg.GET("/answer-key-holder", api.answerKeyHolder)
}

// Handlers

func (api *testApi) create(ctx echo.Context) error {
	var data testlib.NewTest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTest")
	}

	test, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, test)
}

func (api *testApi) query(ctx echo.Context) error {
	filter := testlib.QueryFilter{
		Course: testlib.Course(ctx.QueryParam("course")),
		Grade:  ctx.QueryParam("grade"),
	}

	tests, err := api.svc.Filter(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying tests")
	}
	if tests == nil {
		tests = []testlib.Test{}
	}
	return ctx.JSON(http.StatusOK, tests)
}

func (api *testApi) retrieve(ctx echo.Context) error {
	test, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, test)
}

func (api *testApi) questions(ctx echo.Context) error {
	questions, err := api.svc.Questions(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, questions)
}

func (api *testApi) choices(ctx echo.Context) error {
	num, err := strconv.Atoi(ctx.Param("num"))
	if err != nil {
		return errHttpNotFound
	}
	choices, err := api.svc.Choices(ctx.Request().Context(), ctx.Param("id"), num)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, choices)
}

// answerKeyHolder returns the generic student record attached to answer keys.
func (api *testApi) answerKeyHolder(ctx echo.Context) error {
	if _, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, student.Placeholder())
}
