package cmd

import (
	"context"
	"errors"
	"log/slog"
	"time"

	httpin "pos/internal/adapters/in/http"
	"pos/internal/adapters/out/sqlstore"
	"pos/internal/adapters/out/sqlstore/accessrepo"
	"pos/internal/adapters/out/sqlstore/archiverepo"
	"pos/internal/adapters/out/sqlstore/menurepo"
	"pos/internal/adapters/out/sqlstore/orderrepo"
	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/services"
	"pos/internal/jobs"
	"pos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *sqlstore.GormUnitOfWorkFactory
	sessions   *accessrepo.GormSessionStore
	logger     *slog.Logger
	now        func() time.Time
}

// NewCompositionRoot wires handlers over gormDB. A nil now uses time.Now.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger, now func() time.Time) CompositionRoot {
	if now == nil {
		now = time.Now
	}
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: sqlstore.NewGormUnitOfWorkFactory(gormDB),
		sessions:   accessrepo.NewGormSessionStore(gormDB, configs.SessionTTL, now),
		logger:     logger,
		now:        now,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) archivingUoWFactory() commands.ArchivingUoWFactory {
	return FuncArchivingUoWFactory(func() commands.ArchivingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) archiveUoWFactory() commands.ArchiveUoWFactory {
	return FuncArchiveUoWFactory(func() commands.ArchiveUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accessUoWFactory() commands.AccessUoWFactory {
	return FuncAccessUoWFactory(func() commands.AccessUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMoveItemCommandHandler() commands.MoveItemCommandHandler {
	return commands.NewMoveItemCommandHandler(c.orderUoWFactory(), services.NewOrderRelocator())
}

func (c *CompositionRoot) CreateMoveTableCommandHandler() commands.MoveTableCommandHandler {
	return commands.NewMoveTableCommandHandler(c.orderUoWFactory(), services.NewOrderRelocator())
}

func (c *CompositionRoot) CreateClearTableCommandHandler() commands.ClearTableCommandHandler {
	return commands.NewClearTableCommandHandler(c.archivingUoWFactory())
}

func (c *CompositionRoot) CreateClearAllOrdersCommandHandler() commands.ClearAllOrdersCommandHandler {
	return commands.NewClearAllOrdersCommandHandler(c.archivingUoWFactory())
}

func (c *CompositionRoot) CreateEditMenuCommandHandler() commands.EditMenuCommandHandler {
	return commands.NewEditMenuCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateReplaceMenuCommandHandler() commands.ReplaceMenuCommandHandler {
	return commands.NewReplaceMenuCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateImportMenuCommandHandler() commands.ImportMenuCommandHandler {
	return commands.NewImportMenuCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateResetArchiveCommandHandler() commands.ResetArchiveCommandHandler {
	return commands.NewResetArchiveCommandHandler(c.archiveUoWFactory())
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.accessUoWFactory(), c.sessions)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateAddUserCodeCommandHandler() commands.AddUserCodeCommandHandler {
	return commands.NewAddUserCodeCommandHandler(c.accessUoWFactory())
}

func (c *CompositionRoot) CreateDeleteUserCodeCommandHandler() commands.DeleteUserCodeCommandHandler {
	return commands.NewDeleteUserCodeCommandHandler(c.accessUoWFactory())
}

func (c *CompositionRoot) CreatePurgeSessionsCommandHandler() commands.PurgeSessionsCommandHandler {
	return commands.NewPurgeSessionsCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportOrdersQueryHandler() queries.ExportOrdersQueryHandler {
	return queries.NewExportOrdersQueryHandler(c.CreateListOrdersQueryHandler())
}

func (c *CompositionRoot) CreateGetTablesQueryHandler() queries.GetTablesQueryHandler {
	return queries.NewGetTablesQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		menurepo.NewGormMenuRepository(c.gormDB),
		services.NewTableGrouper(),
	)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(menurepo.NewGormMenuRepository(c.gormDB))
}

func (c *CompositionRoot) CreateExportMenuQueryHandler() queries.ExportMenuQueryHandler {
	return queries.NewExportMenuQueryHandler(menurepo.NewGormMenuRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetArchiveQueryHandler() queries.GetArchiveQueryHandler {
	return queries.NewGetArchiveQueryHandler(archiverepo.NewGormArchiveRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListUserCodesQueryHandler() queries.ListUserCodesQueryHandler {
	return queries.NewListUserCodesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		httpin.Commands{
			CreateOrder:    c.CreateCreateOrderCommandHandler(),
			MoveItem:       c.CreateMoveItemCommandHandler(),
			MoveTable:      c.CreateMoveTableCommandHandler(),
			ClearTable:     c.CreateClearTableCommandHandler(),
			ClearAllOrders: c.CreateClearAllOrdersCommandHandler(),
			EditMenu:       c.CreateEditMenuCommandHandler(),
			ReplaceMenu:    c.CreateReplaceMenuCommandHandler(),
			ImportMenu:     c.CreateImportMenuCommandHandler(),
			ResetArchive:   c.CreateResetArchiveCommandHandler(),
			Login:          c.CreateLoginCommandHandler(),
			Logout:         c.CreateLogoutCommandHandler(),
			AddUserCode:    c.CreateAddUserCodeCommandHandler(),
			DeleteUserCode: c.CreateDeleteUserCodeCommandHandler(),
		},
		httpin.Queries{
			ListOrders:    c.CreateListOrdersQueryHandler(),
			ExportOrders:  c.CreateExportOrdersQueryHandler(),
			GetTables:     c.CreateGetTablesQueryHandler(),
			GetMenu:       c.CreateGetMenuQueryHandler(),
			ExportMenu:    c.CreateExportMenuQueryHandler(),
			GetArchive:    c.CreateGetArchiveQueryHandler(),
			ListUserCodes: c.CreateListUserCodesQueryHandler(),
			GetSession:    c.CreateGetSessionQueryHandler(),
		},
		c.logger,
		c.now,
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(c.CreateServer(), httpin.RouterOptions{
		Logger:           c.logger,
		ValidateRequests: c.configs.OpenAPIValidation,
		AuthEnforced:     c.configs.AuthEnforced,
	})
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(c.CreatePurgeSessionsCommandHandler(), c.configs.SessionPurgeSchedule, c.logger)
}

// SeedAdminCode registers the configured bootstrap admin code. An existing code
// is left as it is.
func (c *CompositionRoot) SeedAdminCode(ctx context.Context) error {
	if c.configs.BootstrapAdminCode == "" {
		return nil
	}
	cmd, err := commands.NewAddUserCodeCommand(c.configs.BootstrapAdminCode, "admin")
	if err != nil {
		return err
	}
	handler := c.CreateAddUserCodeCommandHandler()
	if err = handler.Handle(ctx, cmd); err != nil && !errors.Is(err, errs.ErrObjectAlreadyExists) {
		return err
	}
	return nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncArchivingUoWFactory func() commands.ArchivingUoW

func (f FuncArchivingUoWFactory) Create() commands.ArchivingUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncArchiveUoWFactory func() commands.ArchiveUoW

func (f FuncArchiveUoWFactory) Create() commands.ArchiveUoW {
	return f()
}

type FuncAccessUoWFactory func() commands.AccessUoW

func (f FuncAccessUoWFactory) Create() commands.AccessUoW {
	return f()
}
