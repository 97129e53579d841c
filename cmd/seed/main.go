// Command seed loads a small demo data set into a running planner server
// through its HTTP API.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"planner/client"
	"planner/dto"
)

func ptr[T any](v T) *T { return &v }

func main() {
	baseURL := flag.String("url", "http://localhost:8000", "planner server base URL")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	api := client.New(*baseURL)

	msg, err := api.Health(ctx)
	if err != nil {
		log.Fatalf("Server not reachable: %v", err)
	}
	log.Printf("Server says: %s", msg)

	courseID, err := api.Courses().Create(ctx, dto.CreateCourseRequest{
		Name: ptr("Software Engineering"),
		Type: ptr("BSc"),
	})
	if err != nil {
		log.Fatalf("Create course: %v", err)
	}

	moduleID, err := api.Modules().Create(ctx, dto.CreateModuleRequest{
		Name:     ptr("Math"),
		Code:     ptr("MATH101"),
		Credits:  ptr(3),
		CourseID: dto.Ref(courseID),
	})
	if err != nil {
		log.Fatalf("Create module: %v", err)
	}

	if _, err := api.ClassSchedules().Create(ctx, dto.CreateClassScheduleRequest{
		DayOfWeek: ptr("Monday"),
		StartTime: ptr("09:00"),
		EndTime:   ptr("10:30"),
		Location:  ptr("Room 101"),
		ModuleID:  dto.Ref(moduleID),
	}); err != nil {
		log.Fatalf("Create class schedule: %v", err)
	}

	if _, err := api.Assessments().Create(ctx, dto.CreateAssessmentRequest{
		Title:    ptr("Exam 1"),
		Type:     ptr("Exam"),
		DueDate:  ptr("2025-09-30"),
		ModuleID: dto.Ref(moduleID),
	}); err != nil {
		log.Fatalf("Create assessment: %v", err)
	}

	userID, err := api.Users().Create(ctx, dto.CreateUserRequest{
		Email:        ptr("student@example.com"),
		PasswordHash: ptr("1234"),
		FirstName:    ptr("Ada"),
		LastName:     ptr("Lovelace"),
		DateOfBirth:  ptr("2004-12-10"),
		CourseID:     dto.Ref(courseID),
	})
	if err != nil {
		log.Fatalf("Create user: %v", err)
	}

	log.Printf("Seeded course=%d module=%d user=%d", courseID, moduleID, userID)
}
