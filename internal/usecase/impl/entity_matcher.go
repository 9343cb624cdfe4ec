package impl

import (
	"context"
	"log/slog"
	"strings"

	"poolscout/config"
	"poolscout/internal/domain/entity"
	"poolscout/internal/domain/repository"
	"poolscout/internal/errors"
	"poolscout/internal/transform/address"
	"poolscout/internal/usecase"
)

type entityMatcher struct {
	properties   repository.PropertyRepository
	expander     *address.Expander
	radiusMeters float64
	logger       *slog.Logger
}

// NewEntityMatcher creates the listing to property matcher.
func NewEntityMatcher(properties repository.PropertyRepository, cfg *config.Config, logger *slog.Logger) usecase.EntityMatcher {
	radius, maxVariants := config.DefaultMatchRadius, config.DefaultMaxVariants
	if cfg.Matching != nil {
		radius, maxVariants = cfg.Matching.RadiusMeters, cfg.Matching.MaxVariants
	}

	return &entityMatcher{
		properties:   properties,
		expander:     address.NewExpander(maxVariants),
		radiusMeters: radius,
		logger:       logger,
	}
}

// Match tries address expansion against properties sharing the postal code
// first, then the nearest property within the radius.
func (m *entityMatcher) Match(ctx context.Context, in usecase.MatchInput) (*usecase.MatchResult, error) {
	property, err := m.matchByExpansion(ctx, in)
	if err != nil {
		return nil, err
	}
	if property != nil {
		return &usecase.MatchResult{Property: property, Strategy: usecase.MatchStrategyAddressExpansion}, nil
	}

	if in.Coordinates == nil || !in.Coordinates.InRange() || in.Coordinates.IsZero() {
		return &usecase.MatchResult{Strategy: usecase.MatchStrategyNone}, nil
	}

	property, distance, err := m.properties.FindNearestProperty(ctx, *in.Coordinates, m.radiusMeters)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return &usecase.MatchResult{Strategy: usecase.MatchStrategyNone}, nil
		}

		return nil, errors.Wrap(err, "failed to find nearest property")
	}

	return &usecase.MatchResult{
		Property:       property,
		Strategy:       usecase.MatchStrategyCoordinateProximity,
		DistanceMeters: distance,
	}, nil
}

func (m *entityMatcher) matchByExpansion(ctx context.Context, in usecase.MatchInput) (*entity.Property, error) {
	postal := address.CanonicalPostalCode(in.PostalCode)
	if strings.TrimSpace(in.AddressNumber) == "" || strings.TrimSpace(in.StreetName) == "" || postal == "" {
		return nil, nil
	}

	variants := m.expander.Expand(address.ExpansionKey{
		AddressNumber: in.AddressNumber,
		StreetName:    in.StreetName,
		Municipality:  in.Municipality,
		PostalCode:    postal,
	})
	if len(variants) == 0 {
		return nil, nil
	}

	candidates, err := m.properties.FindPropertiesByPostalCode(ctx, postal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find properties by postal code")
	}

	for _, candidate := range candidates {
		candidateVariants := m.expander.Expand(address.ExpansionKey{
			AddressNumber: candidate.AddressNumber,
			StreetName:    candidate.StreetName,
			Municipality:  candidate.Municipality,
			PostalCode:    candidate.PostalCode,
		})
		if variants.Intersects(candidateVariants) {
			m.logger.LogAttrs(ctx, slog.LevelDebug, "Matched property by address expansion",
				slog.String("propertyId", candidate.ID),
				slog.Int("candidates", len(candidates)),
			)

			return candidate, nil
		}
	}

	return nil, nil
}
