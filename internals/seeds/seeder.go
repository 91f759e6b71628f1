package seeds

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	attModel "volunteerhub_backend/internals/features/attendance/attendance/model"
	attRepo "volunteerhub_backend/internals/features/attendance/attendance/repository"
	eventModel "volunteerhub_backend/internals/features/events/events/model"
	eventRepo "volunteerhub_backend/internals/features/events/events/repository"
	regModel "volunteerhub_backend/internals/features/events/registrations/model"
	regRepo "volunteerhub_backend/internals/features/events/registrations/repository"
	userModel "volunteerhub_backend/internals/features/users/user/model"
	userRepo "volunteerhub_backend/internals/features/users/user/repository"
)

// Run fills the store with demo users, events across the last few months,
// registrations and attendance, so the dashboard has something to chart
// in mock-DB mode. Every account uses the password "volunteer123".
func Run(
	users userRepo.UserRepository,
	events eventRepo.EventRepository,
	registrations regRepo.RegistrationRepository,
	attendance attRepo.AttendanceRepository,
) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("volunteer123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[SEED ERROR] hash password: %v", err)
		return
	}

	organizer := &userModel.UserModel{
		Name: "Dana Whitfield", Email: "dana@volunteerhub.test",
		Password: string(hashed), Role: "organizer", Department: "Community Outreach",
	}
	alice := &userModel.UserModel{
		Name: "Alice Tran", Email: "alice@volunteerhub.test",
		Password: string(hashed), Role: "student", Department: "Biology",
	}
	ben := &userModel.UserModel{
		Name: "Ben Okafor", Email: "ben@volunteerhub.test",
		Password: string(hashed), Role: "student", Department: "Computer Science",
	}
	for _, u := range []*userModel.UserModel{organizer, alice, ben} {
		if err := users.Create(u); err != nil {
			log.Printf("[SEED ERROR] user %s: %v", u.Email, err)
			return
		}
	}

	now := time.Now()
	monthsAgo := func(m int, day, hour int) time.Time {
		return time.Date(now.Year(), now.Month()-time.Month(m), day, hour, 0, 0, 0, now.Location())
	}

	beachDate := monthsAgo(2, 12, 9)
	pantryDate := monthsAgo(1, 5, 10)
	parkDate := monthsAgo(0, 2, 8)

	beach := &eventModel.EventModel{
		Title: "Beach Cleanup", Description: "Shoreline litter sweep",
		Date: &beachDate, Time: "09:00", Location: "North Beach",
		MaxVolunteers: 25, OrganizerID: organizer.ID, Category: "environment",
		Tags: []string{"outdoors", "cleanup"}, Status: eventModel.StatusCompleted,
	}
	pantry := &eventModel.EventModel{
		Title: "Food Pantry Shift", Description: "Sorting and shelving donations",
		Date: &pantryDate, Time: "10:00", Location: "Community Center",
		MaxVolunteers: 10, OrganizerID: organizer.ID, Category: "food",
		Status: eventModel.StatusCompleted,
	}
	park := &eventModel.EventModel{
		Title: "Park Tree Planting", Description: "Saplings for the east lawn",
		Date: &parkDate, Time: "08:00", Location: "Riverside Park",
		MaxVolunteers: 30, OrganizerID: organizer.ID, Category: "environment",
		Tags: []string{"outdoors"}, Status: eventModel.StatusUpcoming,
	}
	for _, e := range []*eventModel.EventModel{beach, pantry, park} {
		if err := events.Create(e); err != nil {
			log.Printf("[SEED ERROR] event %s: %v", e.Title, err)
			return
		}
	}

	regs := []*regModel.RegistrationModel{
		{EventID: beach.ID, UserID: alice.ID, Status: regModel.StatusRegistered, RegisteredAt: beachDate.AddDate(0, 0, -7)},
		{EventID: pantry.ID, UserID: alice.ID, Status: regModel.StatusRegistered, RegisteredAt: pantryDate.AddDate(0, 0, -3)},
		{EventID: park.ID, UserID: alice.ID, Status: regModel.StatusRegistered, RegisteredAt: parkDate.AddDate(0, 0, -1)},
		{EventID: beach.ID, UserID: ben.ID, Status: regModel.StatusRegistered, RegisteredAt: beachDate.AddDate(0, 0, -5)},
	}
	for _, r := range regs {
		if err := registrations.Create(r); err != nil {
			log.Printf("[SEED ERROR] registration: %v", err)
			return
		}
	}

	beachOut := beachDate.Add(3 * time.Hour)
	pantryOut := pantryDate.Add(2*time.Hour + 30*time.Minute)
	records := []*attModel.AttendanceModel{
		{UserID: alice.ID, EventID: beach.ID, CheckInTime: beachDate, CheckOutTime: &beachOut, Hours: 3, Status: attModel.StatusCompleted},
		{UserID: alice.ID, EventID: pantry.ID, CheckInTime: pantryDate, CheckOutTime: &pantryOut, Hours: 2.5, Status: attModel.StatusCompleted},
	}
	for _, a := range records {
		if err := attendance.Create(a); err != nil {
			log.Printf("[SEED ERROR] attendance: %v", err)
			return
		}
	}

	log.Printf("🌱 Seeded %d users, %d events, %d registrations, %d attendance records",
		3, 3, len(regs), len(records))
}
