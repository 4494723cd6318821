package gym

import "gymhub/internal/pkg/apperr"

var (
	ErrGymNotFound       = apperr.NotFound("GYM_NOT_FOUND", "gym not found")
	ErrLocationNotFound  = apperr.NotFound("LOCATION_NOT_FOUND", "location not found")
	ErrEquipmentNotFound = apperr.NotFound("EQUIPMENT_NOT_FOUND", "equipment not found")
	ErrMemberNotFound    = apperr.NotFound("MEMBER_NOT_FOUND", "member not found")
	ErrOwnerNotFound     = apperr.NotFound("OWNER_NOT_FOUND", "gym owner not found")
	ErrNotYourResource   = apperr.Forbidden("you don't own this resource")
)
