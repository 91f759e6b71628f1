package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	attModel "volunteerhub_backend/internals/features/attendance/attendance/model"
	"volunteerhub_backend/internals/features/home/dashboard/dto"
	userDto "volunteerhub_backend/internals/features/users/user/dto"
	userService "volunteerhub_backend/internals/features/users/user/service"
)

// Chart geometry, fixed to match the frontend's SVG viewport.
const (
	chartWidth   = 560
	chartHeight  = 180
	chartPadX    = 32
	chartPadY    = 16
	windowMonths = 6
)

// DashboardService derives the participation metrics behind the monthly
// chart. Only attendance for events the user actually registered for
// counts here; walk-in attendance still shows up in the raw profile
// totals and the leaderboard, just not in these metrics.
type DashboardService struct {
	Users *userService.UserService

	Now func() time.Time
}

func NewDashboardService(users *userService.UserService) *DashboardService {
	return &DashboardService{Users: users, Now: time.Now}
}

func (s *DashboardService) BuildDashboard(userID uuid.UUID) (*dto.DashboardResponse, error) {
	summary, err := s.Users.UserSummary(userID)
	if err != nil {
		return nil, err
	}

	registered := summary.RegisteredEvents
	registeredIDs := make(map[uuid.UUID]bool, len(registered))
	for i := range registered {
		registeredIDs[registered[i].ID] = true
	}

	var attended []attModel.AttendanceModel
	for i := range summary.Attendance {
		if registeredIDs[summary.Attendance[i].EventID] {
			attended = append(attended, summary.Attendance[i])
		}
	}

	participationRate := 0
	if len(registered) > 0 {
		participationRate = int(math.Round(float64(len(attended)) / float64(len(registered)) * 100))
	}

	labels, regCounts, attCounts, maxCount := monthlySeries(registered, attended, s.Now())

	return &dto.DashboardResponse{
		TotalRegistered:         len(registered),
		TotalAttended:           len(attended),
		ParticipationRate:       participationRate,
		MonthLabels:             labels,
		MonthlyRegisteredCounts: regCounts,
		MonthlyAttendedCounts:   attCounts,
		MonthlyMaxCount:         maxCount,
		LinePointsRegistered:    linePoints(regCounts, maxCount),
		LinePointsAttended:      linePoints(attCounts, maxCount),
	}, nil
}

// monthlySeries buckets the events and attendance into the last
// windowMonths calendar months, oldest first. Anything outside the window
// is dropped, not clipped to the edge buckets.
func monthlySeries(registered []userDto.RegisteredEventResponse, attended []attModel.AttendanceModel, now time.Time) (labels []string, regCounts, attCounts []int, maxCount int) {
	months := make([]time.Time, 0, windowMonths)
	index := make(map[string]int, windowMonths)
	for i := windowMonths - 1; i >= 0; i-- {
		d := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		index[monthKey(d)] = len(months)
		months = append(months, d)
	}

	regCounts = make([]int, len(months))
	attCounts = make([]int, len(months))

	for i := range registered {
		d := registered[i].BucketDate()
		if d.IsZero() {
			continue
		}
		if pos, ok := index[monthKey(d)]; ok {
			regCounts[pos]++
		}
	}
	for i := range attended {
		d := attended[i].BucketDate()
		if d.IsZero() {
			continue
		}
		if pos, ok := index[monthKey(d)]; ok {
			attCounts[pos]++
		}
	}

	labels = make([]string, len(months))
	for i := range months {
		labels[i] = months[i].Month().String()[:3]
	}

	maxCount = 1
	for i := range regCounts {
		if regCounts[i] > maxCount {
			maxCount = regCounts[i]
		}
		if attCounts[i] > maxCount {
			maxCount = attCounts[i]
		}
	}
	return labels, regCounts, attCounts, maxCount
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// linePoints maps a count series onto the fixed SVG viewport as an
// "x,y x,y ..." polyline. A single bucket cannot make a line, so n <= 1
// yields an empty string.
func linePoints(counts []int, maxCount int) string {
	n := len(counts)
	if n <= 1 {
		return ""
	}

	cw := float64(chartWidth - chartPadX*2)
	ch := float64(chartHeight - chartPadY*2)
	stepX := cw / float64(n-1)

	points := make([]string, 0, n)
	for i := 0; i < n; i++ {
		x := float64(chartPadX) + stepX*float64(i)
		y := float64(chartPadY) + (ch - float64(counts[i])/float64(maxCount)*ch)
		points = append(points, fmt.Sprintf("%g,%g", x, y))
	}
	return strings.Join(points, " ")
}
