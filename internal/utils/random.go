package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/storeops-dev/roster-manager/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph",
	"Jessica", "Thomas", "Sarah", "Daniel", "Karen",
}

var commonLastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson",
	"Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
}

func GenerateRandomFullName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	last := commonLastNames[rand.Intn(len(commonLastNames))]
	return first + " " + last
}

var roles = []domain.Role{
	domain.RoleAssociate,
	domain.RoleShiftLead,
	domain.RoleStoreManager,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

func GenerateUsernameFromFullName(fullName string) string {
	parts := strings.Fields(strings.ToLower(fullName))
	username := ""

	for _, part := range parts {
		length := rand.Intn(len(part)) + 1
		username += part[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	username := GenerateUsernameFromFullName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	randomPassword := make([]rune, length)
	for i := range randomPassword {
		randomPassword[i] = letters[rand.Intn(len(letters))]
	}
	return string(randomPassword)
}

func GenerateRandomID(letterLength int, digitLength int) string {
	randomID := make([]rune, letterLength+digitLength)
	for i := range randomID {
		if i < letterLength {
			randomID[i] = letters[rand.Intn(len(letters))]
		} else {
			randomID[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(randomID)
}

// Fisher-Yates shuffle over the weekdays, then take a random prefix.
func GenerateRandomApplicableDays() []int32 {
	days := []int32{1, 2, 3, 4, 5, 6, 7}

	for i := len(days) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		days[i], days[j] = days[j], days[i]
	}

	n := rand.Intn(len(days)) + 1

	return days[:n]
}

func GenerateRandomShiftTemplate() *domain.ShiftTemplate {
	st := domain.ShiftTemplate{
		Name:        "Shift template " + GenerateRandomID(3, 3),
		Description: "Seeded shift template " + GenerateRandomID(20, 10),
	}

	shiftsNum := rand.Intn(6) + 1
	shifts := make([]domain.ShiftTemplateShift, shiftsNum)
	hourPerShift := 24 / shiftsNum

	for i := range shifts {
		startHour := i * hourPerShift
		endHour := rand.Intn(hourPerShift) + startHour

		startMinute := rand.Intn(30)    // 0~29
		endMinute := rand.Intn(30) + 30 // 30~59

		shifts[i] = domain.ShiftTemplateShift{
			StartTime:          fmt.Sprintf("%02d:%02d:00", startHour, startMinute),
			EndTime:            fmt.Sprintf("%02d:%02d:00", endHour, endMinute),
			RequiredStaffCount: int32(rand.Intn(10) + 1),
			ApplicableDays:     GenerateRandomApplicableDays(),
		}
	}

	st.Shifts = shifts

	return &st
}

// Fisher-Yates based random subset with at least one element.
func GenerateRandomSubset(arr []int32) []int32 {
	arrCopy := append([]int32{}, arr...)

	for i := 0; i < len(arrCopy)-1; i++ {
		j := rand.Intn(len(arrCopy)-i) + i
		arrCopy[i], arrCopy[j] = arrCopy[j], arrCopy[i]
	}

	l := rand.Intn(len(arrCopy)) + 1
	return arrCopy[:l]
}

func GenerateRandomSubmission(version *domain.ScheduleVersion, template *domain.ShiftTemplate, user *domain.User) *domain.AvailabilitySubmission {
	as := &domain.AvailabilitySubmission{
		ScheduleVersionID: version.ID,
		UserID:            user.ID,
		Items:             make([]domain.AvailabilitySubmissionItem, len(template.Shifts)),
	}

	for i, shift := range template.Shifts {
		as.Items[i] = domain.AvailabilitySubmissionItem{
			ShiftID: shift.ID,
			Days:    GenerateRandomSubset(shift.ApplicableDays),
		}
	}

	return as
}
