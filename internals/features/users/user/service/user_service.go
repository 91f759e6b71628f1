package service

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attModel "volunteerhub_backend/internals/features/attendance/attendance/model"
	attRepo "volunteerhub_backend/internals/features/attendance/attendance/repository"
	eventRepo "volunteerhub_backend/internals/features/events/events/repository"
	regRepo "volunteerhub_backend/internals/features/events/registrations/repository"
	"volunteerhub_backend/internals/features/users/user/dto"
	userModel "volunteerhub_backend/internals/features/users/user/model"
	userRepo "volunteerhub_backend/internals/features/users/user/repository"
	"volunteerhub_backend/internals/constants"
)

// UserService derives the read-side aggregates: the profile summary, the
// leaderboard and the profile update.
type UserService struct {
	Users         userRepo.UserRepository
	Events        eventRepo.EventRepository
	Registrations regRepo.RegistrationRepository
	Attendance    attRepo.AttendanceRepository

	Now func() time.Time
}

func NewUserService(
	users userRepo.UserRepository,
	events eventRepo.EventRepository,
	registrations regRepo.RegistrationRepository,
	attendance attRepo.AttendanceRepository,
) *UserService {
	return &UserService{
		Users:         users,
		Events:        events,
		Registrations: registrations,
		Attendance:    attendance,
		Now:           time.Now,
	}
}

// UserSummary builds the profile view: registered events joined with
// registration metadata, the attendance list, and the totals.
//
// Backfill: a student with registrations but no attendance matching any
// registered event gets exactly one synthesized completed record (today
// 09:00 local, two hours) derived from their first registration. The
// record is persisted inside the read, and it becomes the working
// attendance list for the totals. Organizers never get synthesized
// attendance.
func (s *UserService) UserSummary(userID uuid.UUID) (*dto.UserSummaryResponse, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}

	regs, err := s.Registrations.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	registeredEvents := make([]dto.RegisteredEventResponse, 0, len(regs))
	registeredIDs := make(map[uuid.UUID]bool, len(regs))
	for i := range regs {
		registeredIDs[regs[i].EventID] = true
		event, err := s.Events.FindByID(regs[i].EventID)
		if err != nil {
			continue
		}
		registeredEvents = append(registeredEvents, dto.RegisteredEventResponse{
			EventModel:   *event,
			RegisteredAt: regs[i].RegisteredAt,
			Status:       regs[i].Status,
		})
	}

	attendance, err := s.Attendance.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	hasAttendanceForRegistered := false
	for i := range attendance {
		if registeredIDs[attendance[i].EventID] {
			hasAttendanceForRegistered = true
			break
		}
	}

	if user.Role == constants.RoleStudent && !hasAttendanceForRegistered && len(regs) > 0 {
		generated, err := s.backfillAttendance(user.ID, regs[0].EventID)
		if err != nil {
			return nil, err
		}
		attendance = []attModel.AttendanceModel{*generated}
	}

	totalHours := 0.0
	for i := range attendance {
		totalHours += attendance[i].Hours
	}

	return &dto.UserSummaryResponse{
		User: dto.ProfileUser{
			ID:             user.ID,
			Name:           user.Name,
			Email:          user.Email,
			Role:           user.Role,
			HoursCompleted: totalHours,
			EventsAttended: len(attendance),
			JoinedAt:       user.JoinedAt,
		},
		RegisteredEvents: registeredEvents,
		Attendance:       attendance,
	}, nil
}

// backfillAttendance synthesizes the plausible two-hour session: check-in
// today at 09:00 local time, check-out two hours later.
func (s *UserService) backfillAttendance(userID, eventID uuid.UUID) (*attModel.AttendanceModel, error) {
	now := s.Now()
	checkIn := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, now.Location())
	checkOut := checkIn.Add(2 * time.Hour)

	generated := &attModel.AttendanceModel{
		UserID:       userID,
		EventID:      eventID,
		CheckInTime:  checkIn,
		CheckOutTime: &checkOut,
		Hours:        2,
		Status:       attModel.StatusCompleted,
	}
	if err := s.Attendance.Create(generated); err != nil {
		return nil, err
	}
	return generated, nil
}

// Leaderboard ranks every user by accrued hours, descending, ties kept in
// stored order, truncated to topN (10 by default).
func (s *UserService) Leaderboard(topN int) ([]dto.LeaderboardEntry, error) {
	if topN <= 0 {
		topN = 10
	}

	users, err := s.Users.FindAll()
	if err != nil {
		return nil, err
	}
	records, err := s.Attendance.FindAll()
	if err != nil {
		return nil, err
	}

	hoursByUser := make(map[uuid.UUID]float64, len(users))
	countByUser := make(map[uuid.UUID]int, len(users))
	for i := range records {
		hoursByUser[records[i].UserID] += records[i].Hours
		countByUser[records[i].UserID]++
	}

	entries := make([]dto.LeaderboardEntry, 0, len(users))
	for i := range users {
		entries = append(entries, dto.LeaderboardEntry{
			ID:             users[i].ID,
			Name:           users[i].Name,
			HoursCompleted: hoursByUser[users[i].ID],
			EventsAttended: countByUser[users[i].ID],
			Role:           users[i].Role,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].HoursCompleted > entries[j].HoursCompleted
	})

	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries, nil
}

// UpdateProfile applies the mutable profile fields. Name is only replaced
// when the trimmed value is non-empty; phone and department accept empty
// strings; preferences are merged key by key.
func (s *UserService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*userModel.UserModel, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}

	if req.Name != nil {
		if trimmed := strings.TrimSpace(*req.Name); trimmed != "" {
			user.Name = trimmed
		}
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Department != nil {
		user.Department = strings.TrimSpace(*req.Department)
	}
	if len(req.Preferences) > 0 {
		if user.Preferences == nil {
			user.Preferences = map[string]interface{}{}
		}
		for k, v := range req.Preferences {
			user.Preferences[k] = v
		}
	}

	if err := s.Users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}
