package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
	"github.com/naolberhanu/LearnSphere/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnrollmentFixture(t *testing.T, price float64) (*usecase.EnrollmentUsecase, *fakeCourseRepo, *fakeUserRepo, *fakeGateway) {
	t.Helper()
	courseRepo := newFakeCourseRepo()
	userRepo := newFakeUserRepo()
	gateway := &fakeGateway{validSig: "good-signature"}

	courseRepo.put(&entity.Course{
		ID: "c1", Title: "Course One", Price: price, EducatorID: "edu-1", IsActive: true,
	})
	require.NoError(t, userRepo.CreateUser(context.Background(), &entity.User{
		ID: "stu-1", Name: "Student", Email: "stu@example.com", Role: entity.UserRoleStudent,
	}))

	uc := usecase.NewEnrollmentUsecase(courseRepo, userRepo, gateway, fakeLogger{}, fakeConfig{})
	return uc, courseRepo, userRepo, gateway
}

func TestCreateOrder(t *testing.T) {
	uc, _, _, gateway := newEnrollmentFixture(t, 100)
	stu := &entity.User{ID: "stu-1", Name: "Student"}

	order, err := uc.CreateOrder(context.Background(), stu, "c1")
	require.NoError(t, err)
	assert.Equal(t, "order_test123", order.OrderID)
	assert.Equal(t, int64(10000), order.Amount) // minor units
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, 1, gateway.orderCalls)

	_, err = uc.CreateOrder(context.Background(), stu, "missing")
	assert.ErrorIs(t, err, entity.ErrCourseNotFound)
}

func TestCreateOrder_FreeCourseSkipsGateway(t *testing.T) {
	uc, _, _, gateway := newEnrollmentFixture(t, 0)
	stu := &entity.User{ID: "stu-1", Name: "Student"}

	order, err := uc.CreateOrder(context.Background(), stu, "c1")
	require.NoError(t, err)
	assert.Equal(t, usecase.FreeEnrollmentOrderID, order.OrderID)
	assert.Equal(t, int64(0), order.Amount)
	assert.Equal(t, 0, gateway.orderCalls)
}

func TestCreateOrder_GatewayDown(t *testing.T) {
	uc, _, _, gateway := newEnrollmentFixture(t, 100)
	gateway.failOrder = true

	_, err := uc.CreateOrder(context.Background(), &entity.User{ID: "stu-1"}, "c1")
	assert.ErrorIs(t, err, entity.ErrUpstream)
}

func TestVerifyAndEnroll(t *testing.T) {
	uc, courseRepo, _, _ := newEnrollmentFixture(t, 100)
	stu := &entity.User{ID: "stu-1", Name: "Student"}

	summary, err := uc.VerifyAndEnroll(context.Background(), stu, "c1", "order_test123", "pay_1", "good-signature")
	require.NoError(t, err)
	assert.Equal(t, "Course One", summary.CourseTitle)
	assert.Equal(t, "pay_1", summary.PaymentID)

	course, err := courseRepo.GetCourseByID(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, course.EnrolledStudents, 1)
	assert.Equal(t, entity.PaymentCompleted, course.EnrolledStudents[0].Status)
	assert.Equal(t, 1, course.TotalStudents)
}

func TestVerifyAndEnroll_TamperedSignature(t *testing.T) {
	uc, courseRepo, _, _ := newEnrollmentFixture(t, 100)
	stu := &entity.User{ID: "stu-1", Name: "Student"}

	// A valid order and payment id cannot rescue a bad signature.
	_, err := uc.VerifyAndEnroll(context.Background(), stu, "c1", "order_test123", "pay_1", "tampered")
	assert.ErrorIs(t, err, entity.ErrInvalidSignature)

	course, err := courseRepo.GetCourseByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, course.EnrolledStudents)
}

func TestVerifyAndEnroll_FreeSentinelSkipsVerification(t *testing.T) {
	uc, _, _, gateway := newEnrollmentFixture(t, 0)
	stu := &entity.User{ID: "stu-1", Name: "Student"}

	_, err := uc.VerifyAndEnroll(context.Background(), stu, "c1", usecase.FreeEnrollmentOrderID, "", "")
	require.NoError(t, err)
	assert.Equal(t, 0, gateway.verifyCalls)
}

func TestVerifyAndEnroll_SecondAttemptRejected(t *testing.T) {
	uc, _, _, _ := newEnrollmentFixture(t, 100)
	stu := &entity.User{ID: "stu-1", Name: "Student"}

	_, err := uc.VerifyAndEnroll(context.Background(), stu, "c1", "order_test123", "pay_1", "good-signature")
	require.NoError(t, err)

	_, err = uc.VerifyAndEnroll(context.Background(), stu, "c1", "order_test123", "pay_2", "good-signature")
	assert.ErrorIs(t, err, entity.ErrAlreadyEnrolled)
}

func TestVerifyAndEnroll_ConcurrentWritersAtMostOnce(t *testing.T) {
	uc, courseRepo, _, _ := newEnrollmentFixture(t, 100)
	stu := &entity.User{ID: "stu-1", Name: "Student"}

	const writers = 32
	var wg sync.WaitGroup
	results := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := uc.VerifyAndEnroll(context.Background(), stu, "c1",
				"order_test123", fmt.Sprintf("pay_%d", n), "good-signature")
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	var wins, rejections int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case assert.ErrorIs(t, err, entity.ErrAlreadyEnrolled):
			rejections++
		}
	}
	assert.Equal(t, 1, wins, "exactly one concurrent verifier may enroll")
	assert.Equal(t, writers-1, rejections)

	course, err := courseRepo.GetCourseByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, course.EnrolledStudents, 1)
	assert.Equal(t, 1, course.TotalStudents)
}

func TestUpdateProgress_Clamping(t *testing.T) {
	uc, _, _, _ := newEnrollmentFixture(t, 100)
	stu := &entity.User{ID: "stu-1", Name: "Student"}
	ctx := context.Background()

	_, err := uc.VerifyAndEnroll(ctx, stu, "c1", "order_test123", "pay_1", "good-signature")
	require.NoError(t, err)

	cases := []struct {
		in, want int
	}{
		{-10, 0},
		{150, 100},
		{55, 55},
	}
	for _, tc := range cases {
		got, err := uc.UpdateProgress(ctx, stu, "c1", tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "progress %d", tc.in)
	}
}

func TestUpdateProgress_NotEnrolled(t *testing.T) {
	uc, _, _, _ := newEnrollmentFixture(t, 100)

	_, err := uc.UpdateProgress(context.Background(), &entity.User{ID: "stranger"}, "c1", 50)
	assert.ErrorIs(t, err, entity.ErrNotEnrolled)
}

func TestListEnrolledCourses(t *testing.T) {
	uc, courseRepo, _, _ := newEnrollmentFixture(t, 100)
	stu := &entity.User{ID: "stu-1", Name: "Student"}
	ctx := context.Background()

	courseRepo.put(&entity.Course{ID: "c2", Title: "Not Mine", Price: 10, IsActive: true})

	_, err := uc.VerifyAndEnroll(ctx, stu, "c1", "order_test123", "pay_1", "good-signature")
	require.NoError(t, err)
	_, err = uc.UpdateProgress(ctx, stu, "c1", 40)
	require.NoError(t, err)

	enrolled, err := uc.ListEnrolledCourses(ctx, stu)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, "c1", enrolled[0].Course.ID)
	assert.Equal(t, 40, enrolled[0].Progress)
	// Other students' enrollment records are stripped from the response.
	assert.Nil(t, enrolled[0].Course.EnrolledStudents)
}
