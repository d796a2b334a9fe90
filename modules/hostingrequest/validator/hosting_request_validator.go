package validator

import (
	"strings"
	"sync"

	coreValidator "meca-api/core/validator"
	"meca-api/modules/hostingrequest/dto"
	"meca-api/modules/hostingrequest/entity"
	"meca-api/modules/hostingrequest/mapper"
)

var registerOnce sync.Once

func register() {
	registerOnce.Do(func() {
		coreValidator.RegisterEnum("host_type", func(s string) bool { return entity.HostType(s).Valid() })
		coreValidator.RegisterEnum("event_type", func(s string) bool { return entity.EventTypeOption(s).Valid() })
		coreValidator.RegisterEnum("indoor_outdoor", func(s string) bool { return entity.IndoorOutdoor(s).Valid() })
		coreValidator.RegisterEnum("request_status", func(s string) bool { return entity.RequestStatus(s).Valid() })
		coreValidator.RegisterEnum("sender_role", func(s string) bool { return entity.SenderRole(s).Valid() })
		coreValidator.RegisterEnum("recipient_type", func(s string) bool { return entity.RecipientType(s).Valid() })
		coreValidator.RegisterEnum("final_status", func(s string) bool { return entity.FinalStatus(s).Valid() })
	})
}

type dateField struct {
	name  string
	value *string
}

func validateDates(result *coreValidator.Result, fields ...dateField) {
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if _, err := mapper.ParseDate(f.name, *f.value); err != nil {
			result.Add(f.name, "must be a date in YYYY-MM-DD format")
		}
	}
}

func ValidateCreateHostingRequest(req *dto.CreateHostingRequestRequest) *coreValidator.Result {
	register()
	result := coreValidator.Struct(req)
	validateDates(result,
		dateField{"event_start_date", req.EventStartDate},
		dateField{"event_end_date", req.EventEndDate},
		dateField{"day_2_date", req.Day2Date},
		dateField{"day_3_date", req.Day3Date},
	)
	if strings.TrimSpace(req.EventDescription) == "" && !hasField(result, "event_description") {
		result.Add("event_description", "is required")
	}
	return result
}

func ValidateUpdateHostingRequest(req *dto.UpdateHostingRequestRequest) *coreValidator.Result {
	register()
	result := coreValidator.Struct(req)
	validateDates(result,
		dateField{"event_start_date", req.EventStartDate},
		dateField{"event_end_date", req.EventEndDate},
		dateField{"day_2_date", req.Day2Date},
		dateField{"day_3_date", req.Day3Date},
		dateField{"admin_response_date", req.AdminResponseDate},
	)
	return result
}

func ValidateRespond(req *dto.RespondRequest) *coreValidator.Result {
	register()
	return coreValidator.Struct(req)
}

func ValidateAssign(req *dto.AssignRequest) *coreValidator.Result {
	register()
	return coreValidator.Struct(req)
}

func ValidateReassign(req *dto.ReassignRequest) *coreValidator.Result {
	register()
	return coreValidator.Struct(req)
}

func ValidateEDAccept(req *dto.EDAcceptRequest) *coreValidator.Result {
	register()
	return coreValidator.Struct(req)
}

func ValidateEDReject(req *dto.EDRejectRequest) *coreValidator.Result {
	register()
	result := coreValidator.Struct(req)
	if req.Reason != "" && strings.TrimSpace(req.Reason) == "" {
		result.Add("reason", "is required")
	}
	return result
}

func ValidateAddMessage(req *dto.AddMessageRequest) *coreValidator.Result {
	register()
	result := coreValidator.Struct(req)
	if req.Message != "" && strings.TrimSpace(req.Message) == "" {
		result.Add("message", "is required")
	}
	return result
}

func ValidateFinalApproval(req *dto.FinalApprovalRequest) *coreValidator.Result {
	register()
	return coreValidator.Struct(req)
}

func ValidateRequestInfo(req *dto.RequestInfoRequest) *coreValidator.Result {
	register()
	result := coreValidator.Struct(req)
	if req.Message != "" && strings.TrimSpace(req.Message) == "" {
		result.Add("message", "is required")
	}
	return result
}

func ValidateRequestorRespond(req *dto.RequestorRespondRequest) *coreValidator.Result {
	register()
	result := coreValidator.Struct(req)
	if req.Message != "" && strings.TrimSpace(req.Message) == "" {
		result.Add("message", "is required")
	}
	return result
}

func hasField(result *coreValidator.Result, field string) bool {
	for _, e := range result.Errors {
		if e.Field == field {
			return true
		}
	}
	return false
}
