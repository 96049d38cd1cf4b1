package cmd

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"workshop/internal/adapters/out/postgres"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/services"
	"workshop/internal/jobs"

	"gorm.io/gorm"
)

const (
	defaultNumberPrefix       = "DN"
	defaultThicknessThreshold = 30.0
	defaultLockAfterDays      = 30
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	prefix := config.NoteNumberPrefix
	if prefix == "" {
		prefix = defaultNumberPrefix
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, prefix),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// CreateSurcharges builds the surcharge strategy list from the SURCHARGES
// config value, a comma-separated set of names ("primer,thickness").
// Unknown names are ignored; an empty value disables surcharges entirely.
func (c *CompositionRoot) CreateSurcharges() []services.Surcharge {
	surcharges := make([]services.Surcharge, 0)

	for _, name := range strings.Split(c.config.Surcharges, ",") {
		switch strings.TrimSpace(name) {
		case "primer":
			surcharges = append(surcharges, services.NewPrimerSurcharge())
		case "thickness":
			threshold := defaultThicknessThreshold
			if v, err := strconv.ParseFloat(c.config.ThicknessThreshold, 64); err == nil && v > 0 {
				threshold = v
			}

			thicknessSurcharge, err := services.NewThicknessSurcharge(threshold)
			if err != nil {
				continue
			}
			surcharges = append(surcharges, thicknessSurcharge)
		}
	}

	return surcharges
}

func (c *CompositionRoot) CreateCreateDeliveryNoteCommandHandler() commands.CreateDeliveryNoteCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryNoteCommandHandler(f)
}

func (c *CompositionRoot) CreateAddLineItemCommandHandler() commands.AddLineItemCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddLineItemCommandHandler(f, c.CreateSurcharges())
}

func (c *CompositionRoot) CreateRemoveLineItemCommandHandler() commands.RemoveLineItemCommandHandler {
	var f commands.NoteUoWFactory = FuncNoteUoWFactory(func() commands.NoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveLineItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateItemPriceCommandHandler() commands.UpdateItemPriceCommandHandler {
	var f commands.NoteUoWFactory = FuncNoteUoWFactory(func() commands.NoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateItemPriceCommandHandler(f)
}

func (c *CompositionRoot) CreateValidateDeliveryNoteCommandHandler() commands.ValidateDeliveryNoteCommandHandler {
	var f commands.NoteUoWFactory = FuncNoteUoWFactory(func() commands.NoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewValidateDeliveryNoteCommandHandler(f)
}

func (c *CompositionRoot) CreateFinalizeDeliveryNoteCommandHandler() commands.FinalizeDeliveryNoteCommandHandler {
	var f commands.NoteUoWFactory = FuncNoteUoWFactory(func() commands.NoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinalizeDeliveryNoteCommandHandler(f)
}

func (c *CompositionRoot) CreateReopenDeliveryNoteCommandHandler() commands.ReopenDeliveryNoteCommandHandler {
	var f commands.NoteUoWFactory = FuncNoteUoWFactory(func() commands.NoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReopenDeliveryNoteCommandHandler(f)
}

func (c *CompositionRoot) CreateLockOverdueNotesCommandHandler() commands.LockOverdueNotesCommandHandler {
	var f commands.NoteUoWFactory = FuncNoteUoWFactory(func() commands.NoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLockOverdueNotesCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePricingProfileCommandHandler() commands.CreatePricingProfileCommandHandler {
	var f commands.PricingUoWFactory = FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePricingProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePricingRatesCommandHandler() commands.UpdatePricingRatesCommandHandler {
	var f commands.PricingUoWFactory = FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePricingRatesCommandHandler(f)
}

func (c *CompositionRoot) CreateReplaceSpecialPricesCommandHandler() commands.ReplaceSpecialPricesCommandHandler {
	var f commands.PricingUoWFactory = FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplaceSpecialPricesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetDeliveryNoteQueryHandler() queries.GetDeliveryNoteQueryHandler {
	return queries.NewGetDeliveryNoteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnfinalizedDeliveryNotesQueryHandler() queries.GetUnfinalizedDeliveryNotesQueryHandler {
	return queries.NewGetUnfinalizedDeliveryNotesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	lockAfterDays := defaultLockAfterDays
	if v, err := strconv.Atoi(c.config.NoteLockAfterDays); err == nil && v > 0 {
		lockAfterDays = v
	}

	return jobs.NewJobManager(c.CreateLockOverdueNotesCommandHandler(), lockAfterDays, c.logger)
}

type FuncNoteUoWFactory func() commands.NoteUoW

func (f FuncNoteUoWFactory) Create() commands.NoteUoW {
	return f()
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
