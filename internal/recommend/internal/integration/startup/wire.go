//go:build wireinject

package startup

import (
	"github.com/ecodeclub/recommend/internal/recommend"
	"github.com/ecodeclub/recommend/internal/recommend/internal/repository/dao"
	testioc "github.com/ecodeclub/recommend/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule() (*recommend.Module, error) {
	wire.Build(
		initDB,
		testioc.InitRedis,
		testioc.InitMQ,
		recommend.InitModule,
	)
	return new(recommend.Module), nil
}

func initDB() *egorm.Component {
	db := testioc.InitDB()
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return db
}
