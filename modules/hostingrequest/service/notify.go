package service

import (
	"context"
	"fmt"

	"meca-api/core/constants"
	"meca-api/core/logger"
	"meca-api/modules/hostingrequest/entity"
	notificationDto "meca-api/modules/notification/dto"
	notificationEntity "meca-api/modules/notification/entity"
	profileEntity "meca-api/modules/profile/entity"
)

func requestLink(r *entity.HostingRequest) string {
	return "/hosting-requests/" + r.ID.String()
}

// notify sends one notification. Delivery failures are logged and never
// returned; the state change they report has already been committed.
func (s *HostingRequestService) notify(ctx context.Context, userID profileEntity.ProfileID, title, message string, r *entity.HostingRequest) {
	s.send(ctx, userID, title, message, notificationEntity.NotificationTypeSystem, requestLink(r), r)
}

func (s *HostingRequestService) send(ctx context.Context, userID profileEntity.ProfileID, title, message string, kind notificationEntity.NotificationType, link string, r *entity.HostingRequest) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.Create(ctx, &notificationDto.CreateNotificationRequest{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    kind,
		Link:    link,
		Data: map[string]any{
			notificationEntity.DataKeyHostingRequestID: r.ID.String(),
			notificationEntity.DataKeyStatus:           string(r.Status),
		},
	})
	if err != nil {
		logger.Warn("HostingRequestService:Notify:Failed", "user_id", userID, "request_id", r.ID, "error", err)
	}
}

// notifyAdmins reads the admin list fresh and notifies each admin except exclude.
func (s *HostingRequestService) notifyAdmins(ctx context.Context, exclude *profileEntity.ProfileID, title, message string, r *entity.HostingRequest) {
	s.sendAdmins(ctx, exclude, title, message, notificationEntity.NotificationTypeSystem, requestLink(r), r)
}

func (s *HostingRequestService) sendAdmins(ctx context.Context, exclude *profileEntity.ProfileID, title, message string, kind notificationEntity.NotificationType, link string, r *entity.HostingRequest) {
	if s.profiles == nil {
		return
	}
	admins, appErr := s.profiles.ListAdmins(ctx)
	if appErr != nil {
		logger.Warn("HostingRequestService:NotifyAdmins:ListAdmins", "request_id", r.ID, "error", appErr)
		return
	}
	for _, admin := range admins {
		if exclude != nil && admin.ID == *exclude {
			continue
		}
		s.send(ctx, admin.ID, title, message, kind, link, r)
	}
}

// directorName is best-effort; notifications fall back to a generic label.
func (s *HostingRequestService) directorName(ctx context.Context, id profileEntity.ProfileID) string {
	profile, appErr := s.profiles.GetByID(ctx, id)
	if appErr != nil || profile == nil {
		return "The assigned event director"
	}
	if name := profile.FullName(); name != "" {
		return name
	}
	return profile.Email
}

// invalidateStats drops the global stats and the stats of every director given.
func (s *HostingRequestService) invalidateStats(ctx context.Context, directors ...*profileEntity.ProfileID) {
	if s.cache == nil {
		return
	}
	keys := []string{constants.RedisKeyHostingRequestStats}
	for _, d := range directors {
		if d != nil {
			keys = append(keys, constants.RedisKeyEDStatsPrefix+d.String())
		}
	}
	if err := s.cache.Del(ctx, keys...); err != nil {
		logger.Warn("HostingRequestService:InvalidateStats", "keys", keys, "error", err)
	}
}

// archiveDecision stores a snapshot of the request after a final decision.
func (s *HostingRequestService) archiveDecision(ctx context.Context, r *entity.HostingRequest) {
	status := "none"
	if r.FinalStatus != nil {
		status = string(*r.FinalStatus)
	}
	key := fmt.Sprintf("hosting-requests/%s/decisions/%s-%s.json", r.ID, s.now().UTC().Format("20060102T150405Z"), status)
	if err := s.archiver.PutJSON(ctx, key, r); err != nil {
		logger.Warn("HostingRequestService:ArchiveDecision", "request_id", r.ID, "key", key, "error", err)
	}
}

func withReason(message string, reason *string) string {
	if reason == nil || *reason == "" {
		return message
	}
	return message + " Reason: " + *reason
}
