package bootstrap

import (
	"github.com/nivekneved/travellounge-sub002/internal/pkg/categories"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/config"

	"go.uber.org/fx"
)

var AliasModule = fx.Module("aliases",
	fx.Provide(
		NewAliasTable,
	),
)

// NewAliasTable loads the category alias file once at startup. A bad file is
// a deploy problem, so it fails the whole app rather than limping along.
func NewAliasTable(cfg config.Config) (categories.AliasTable, error) {
	return categories.Load(cfg.Search.CategoryAliasPath)
}
