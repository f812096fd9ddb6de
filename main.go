package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/km-arc/go-inject/framework/app"
	"github.com/km-arc/go-inject/framework/container"
	"github.com/km-arc/go-inject/framework/generic"
	gohttp "github.com/km-arc/go-inject/framework/http"
	"github.com/km-arc/go-inject/framework/routing"
)

func main() {
	application := app.New() // loads .env automatically
	application.Register(&RepositoryProvider{})
	application.Boot()

	r := application.Router()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		gohttp.NewResponse(w).Success(map[string]any{"message": "go-inject"})
	})

	// GET /repositories/User resolves Repository<User> by type.
	r.Prefix("/repositories", func(repos *routing.Router) {
		repos.Get("/{entity}", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)
			entity, ok := entities[routing.Param(req, "entity")]
			if !ok {
				res.NotFound()
				return
			}

			repo, err := application.Inject(container.InjectionPoint{
				Owner: "api",
				Name:  "repository",
				Type:  generic.Parameterize(Repository, entity),
			})
			switch {
			case errors.Is(err, container.ErrUnsatisfied):
				res.NotFound(err.Error())
			case errors.Is(err, container.ErrAmbiguous):
				res.Error(http.StatusConflict, err.Error())
			case err != nil:
				res.Error(http.StatusInternalServerError, err.Error())
			default:
				res.Success(repo.(Store).Describe())
			}
		})
	})

	if err := application.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
