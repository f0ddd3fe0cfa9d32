package main

import (
	"NCCPortal/internal/bootstrap"
	pkg "NCCPortal/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.Loadenv()
	app := fx.New(
		pkg.EchoModules,
	)

	app.Run()
}
