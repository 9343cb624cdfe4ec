// Package dedup prepares staged pool addresses for promotion to the master
// store: it standardizes text, removes duplicates within the batch and against
// the master store, drops unusable rows and assigns surrogate keys.
package dedup

import (
	"context"
	"strings"

	"poolscout/internal/domain/entity"
	"poolscout/internal/errors"

	"github.com/paulmach/orb"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultBufferKm pads the reference lookup box on every side.
const DefaultBufferKm = 5.0

const (
	StageStandardize       = "standardize"
	StageInternalDuplicate = "internal_duplicates"
	StageInvalid           = "invalid_records"
	StageMasterDuplicate   = "master_duplicates"
)

// ReferenceLookup returns master properties intersecting a bound.
type ReferenceLookup func(ctx context.Context, bound orb.Bound) ([]*entity.Property, error)

// InternalDuplicate is a row dropped because an earlier row in the batch has
// the same compound key.
type InternalDuplicate struct {
	Row entity.StagedAddress
	// KeptAssignmentID identifies the earlier row that was kept.
	KeptAssignmentID int64
}

// ReferenceDuplicate is a row dropped because the master store already holds it.
type ReferenceDuplicate struct {
	Row        entity.StagedAddress
	PropertyID string
	AddressID  int64
}

// Result is the outcome of a full clean.
type Result struct {
	Kept                []entity.StagedAddress
	InternalDuplicates  []InternalDuplicate
	Invalid             []entity.StagedAddress
	ReferenceDuplicates []ReferenceDuplicate
	Bound               *orb.Bound
	Stages              []entity.StageCount
}

// Cleaner runs the dedup stages in order.
type Cleaner struct {
	bufferMeters float64
	newID        IDGenerator
}

// Option customizes a Cleaner.
type Option func(*Cleaner)

// WithIDGenerator replaces the random surrogate key source.
func WithIDGenerator(gen IDGenerator) Option {
	return func(c *Cleaner) {
		c.newID = gen
	}
}

// New returns a Cleaner. A non-positive buffer uses DefaultBufferKm.
func New(bufferKm float64, opts ...Option) *Cleaner {
	if bufferKm <= 0 {
		bufferKm = DefaultBufferKm
	}

	c := &Cleaner{bufferMeters: bufferKm * 1000, newID: RandomBigint}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Clean runs every stage. Surviving rows carry a new address id.
func (c *Cleaner) Clean(ctx context.Context, rows []entity.StagedAddress, lookup ReferenceLookup) (*Result, error) {
	res := &Result{}

	std := Standardize(rows)
	res.Stages = append(res.Stages, entity.StageCount{Stage: StageStandardize, Before: len(rows), After: len(std)})

	kept, dups := RemoveInternalDuplicates(std)
	res.InternalDuplicates = dups
	res.Stages = append(res.Stages, entity.StageCount{Stage: StageInternalDuplicate, Before: len(std), After: len(kept)})

	valid, invalid := FilterInvalid(kept)
	res.Invalid = invalid
	res.Stages = append(res.Stages, entity.StageCount{Stage: StageInvalid, Before: len(kept), After: len(valid)})

	if len(valid) == 0 {
		return res, nil
	}

	bound, _ := BoundingBox(valid, c.bufferMeters)
	res.Bound = &bound

	reference, err := lookup(ctx, bound)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reference properties")
	}

	unique, refDups := RemoveReferenceDuplicates(valid, reference)
	res.ReferenceDuplicates = refDups
	res.Stages = append(res.Stages, entity.StageCount{Stage: StageMasterDuplicate, Before: len(valid), After: len(unique)})

	res.Kept, err = c.AssignIDs(unique)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Standardize upper-cases postal codes without spaces and title-cases street
// and municipality names.
func Standardize(rows []entity.StagedAddress) []entity.StagedAddress {
	caser := cases.Title(language.English)
	out := make([]entity.StagedAddress, len(rows))
	for i, r := range rows {
		r.PostalCode = standardPostal(r.PostalCode)
		r.StreetName = caser.String(strings.TrimSpace(r.StreetName))
		r.Municipality = caser.String(strings.TrimSpace(r.Municipality))
		r.AddressNumber = strings.TrimSpace(r.AddressNumber)
		out[i] = r
	}

	return out
}

type compoundKey struct {
	street, number, place string
}

func municipalityKey(street, number, municipality string) compoundKey {
	return compoundKey{street: street, number: number, place: "m:" + municipality}
}

func postalKey(street, number, postal string) compoundKey {
	return compoundKey{street: street, number: number, place: "p:" + postal}
}

// RemoveInternalDuplicates keeps the first row for each (street, number,
// municipality) key and each (street, number, postal code) key. A row matching
// an earlier row on either key is dropped, whether that earlier row was kept
// or not, so running it twice changes nothing.
func RemoveInternalDuplicates(rows []entity.StagedAddress) ([]entity.StagedAddress, []InternalDuplicate) {
	owners := make(map[compoundKey]int64, len(rows)*2)
	kept := make([]entity.StagedAddress, 0, len(rows))
	var dups []InternalDuplicate

	for _, r := range rows {
		mk := municipalityKey(r.StreetName, r.AddressNumber, r.Municipality)
		pk := postalKey(r.StreetName, r.AddressNumber, r.PostalCode)

		owner, dup := owners[mk]
		if !dup {
			owner, dup = owners[pk]
		}
		if !dup {
			owner = r.AssignmentID
			kept = append(kept, r)
		} else {
			dups = append(dups, InternalDuplicate{Row: r, KeptAssignmentID: owner})
		}

		if _, ok := owners[mk]; !ok {
			owners[mk] = owner
		}
		if _, ok := owners[pk]; !ok {
			owners[pk] = owner
		}
	}

	return kept, dups
}

// FilterInvalid drops rows without a number or street, rows with missing or
// out-of-range coordinates and rows with neither municipality nor postal code.
func FilterInvalid(rows []entity.StagedAddress) (valid, invalid []entity.StagedAddress) {
	for _, r := range rows {
		switch {
		case strings.TrimSpace(r.AddressNumber) == "",
			strings.TrimSpace(r.StreetName) == "",
			!r.Coordinates.InRange(),
			strings.TrimSpace(r.Municipality) == "" && strings.TrimSpace(r.PostalCode) == "":
			invalid = append(invalid, r)
		default:
			valid = append(valid, r)
		}
	}

	return valid, invalid
}

// RemoveReferenceDuplicates drops rows whose compound keys already exist among
// the reference properties.
func RemoveReferenceDuplicates(rows []entity.StagedAddress, reference []*entity.Property) ([]entity.StagedAddress, []ReferenceDuplicate) {
	caser := cases.Title(language.English)
	index := make(map[compoundKey]*entity.Property, len(reference)*2)
	for _, p := range reference {
		street := caser.String(strings.TrimSpace(p.StreetName))
		number := strings.TrimSpace(p.AddressNumber)
		mk := municipalityKey(street, number, caser.String(strings.TrimSpace(p.Municipality)))
		pk := postalKey(street, number, standardPostal(p.PostalCode))
		if _, ok := index[mk]; !ok {
			index[mk] = p
		}
		if _, ok := index[pk]; !ok {
			index[pk] = p
		}
	}

	kept := make([]entity.StagedAddress, 0, len(rows))
	var dups []ReferenceDuplicate
	for _, r := range rows {
		p, ok := index[municipalityKey(r.StreetName, r.AddressNumber, r.Municipality)]
		if !ok {
			p, ok = index[postalKey(r.StreetName, r.AddressNumber, r.PostalCode)]
		}
		if ok {
			dups = append(dups, ReferenceDuplicate{Row: r, PropertyID: p.ID, AddressID: p.AddressID})

			continue
		}
		kept = append(kept, r)
	}

	return kept, dups
}

// AssignIDs gives every row a fresh random address id.
func (c *Cleaner) AssignIDs(rows []entity.StagedAddress) ([]entity.StagedAddress, error) {
	out := make([]entity.StagedAddress, len(rows))
	for i, r := range rows {
		id, err := c.newID()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate address id")
		}
		r.NewAddressID = id
		out[i] = r
	}

	return out, nil
}

func standardPostal(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}
