//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/recommend/internal/recommend"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		recommend.InitModule,
		wire.FieldsOf(new(*recommend.Module), "Hdl"),
		initGinxServer)
	return new(App), nil
}
