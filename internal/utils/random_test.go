package utils

import (
	"regexp"
	"slices"
	"testing"

	"github.com/storeops-dev/roster-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateUsernameFromFullName(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z]+[0-9]{1,3}$`)

	for i := 0; i < 50; i++ {
		username := GenerateUsernameFromFullName(GenerateRandomFullName())
		assert.Regexp(t, pattern, username)
	}
}

func TestGenerateRandomUser(t *testing.T) {
	user, err := GenerateRandomUser("secret-pass", "example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, user.Username)
	assert.NotEmpty(t, user.FullName)
	assert.Equal(t, user.Username+"@example.com", user.Email)
	assert.Contains(t, []domain.Role{domain.RoleAssociate, domain.RoleShiftLead, domain.RoleStoreManager}, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-pass")))
}

func TestGenerateRandomOTP(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9]{6}$`)

	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, GenerateRandomOTP())
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	for _, length := range []int{1, 8, 12, 32} {
		assert.Len(t, GenerateRandomPassword(length), length)
	}
}

func TestGenerateRandomApplicableDays(t *testing.T) {
	for i := 0; i < 50; i++ {
		days := GenerateRandomApplicableDays()
		require.NotEmpty(t, days)
		require.LessOrEqual(t, len(days), 7)

		seen := map[int32]bool{}
		for _, day := range days {
			assert.GreaterOrEqual(t, day, int32(1))
			assert.LessOrEqual(t, day, int32(7))
			assert.False(t, seen[day], "duplicate day %d", day)
			seen[day] = true
		}
	}
}

func TestGenerateRandomShiftTemplate(t *testing.T) {
	for i := 0; i < 20; i++ {
		st := GenerateRandomShiftTemplate()

		require.NotEmpty(t, st.Shifts)
		assert.NoError(t, ValidateShiftTemplateShiftTime(st))

		for _, shift := range st.Shifts {
			assert.GreaterOrEqual(t, shift.RequiredStaffCount, int32(1))
			assert.NotEmpty(t, shift.ApplicableDays)
		}
	}
}

func TestGenerateRandomSubset(t *testing.T) {
	source := []int32{1, 2, 3, 4, 5, 6, 7}

	for i := 0; i < 50; i++ {
		subset := GenerateRandomSubset(source)
		require.NotEmpty(t, subset)
		require.LessOrEqual(t, len(subset), len(source))

		for _, v := range subset {
			assert.True(t, slices.Contains(source, v))
		}
	}

	// The source slice must not be reordered by the shuffle.
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6, 7}, source)
}

func TestGenerateRandomSubmission(t *testing.T) {
	version := &domain.ScheduleVersion{ID: 42}
	user := &domain.User{ID: 7}
	template := &domain.ShiftTemplate{
		Shifts: []domain.ShiftTemplateShift{
			{ID: 1, ApplicableDays: []int32{1, 2, 3, 4, 5}},
			{ID: 2, ApplicableDays: []int32{6, 7}},
		},
	}

	submission := GenerateRandomSubmission(version, template, user)

	assert.Equal(t, int64(42), submission.ScheduleVersionID)
	assert.Equal(t, int64(7), submission.UserID)
	require.NoError(t, ValidateSubmissionWithTemplate(submission, template))
}
