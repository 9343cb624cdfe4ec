package impl

import (
	"time"

	"poolscout/internal/domain/entity"
)

// Stage names recorded in run summaries.
const (
	stageClean             = "clean"
	stageHomeFilter        = "home_filter"
	stageAddressCorrection = "address_correction"
	stagePrepareLoad       = "prepare_load"
	stageReverseGeocode    = "reverse_geocode"
	stageUniqueAddresses   = "unique_addresses"
)

// Drop reasons recorded in run summaries.
const (
	dropDuplicateMLS         = "duplicate_mls_id"
	dropMissingMLS           = "missing_mls_id"
	dropNonHome              = "non_home_category"
	dropUnresolvableAddress  = "unresolvable_address"
	dropMissingAddressNumber = "missing_address_number"
	dropMissingCoordinates   = "missing_coordinates"
	dropInvalidRecord        = "invalid_record"
	dropInternalDuplicate    = "internal_duplicate"
	dropMasterDuplicate      = "master_duplicate"
	dropUnmatchedRemoval     = "unmatched_removal"
)

// finishRun stamps the summary and records err, if any, so a failed run still
// reports how far it got.
func finishRun(summary *entity.RunSummary, now func() time.Time, err error) (*entity.RunSummary, error) {
	summary.FinishedAt = now()
	if err != nil {
		summary.Failed = true
		summary.Errors = append(summary.Errors, err.Error())
	}

	return summary, err
}
