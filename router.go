package main

import (
	handler "edu-manage/biz/adaptor/controller"
	"edu-manage/biz/adaptor/controller/edumanage"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)
	r.POST("/jwt", edumanage.IssueToken)

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", edumanage.CreateUser)
			users.GET("", edumanage.SearchUsers)
			users.GET("/:email", edumanage.GetUser)
			users.GET("/teacher/:email", edumanage.CheckTeacher)
			users.GET("/admin/:email", edumanage.CheckAdmin)
			users.GET("/teacher-details/:email", edumanage.GetTeacherDetails)
			users.PATCH("/role/:email", edumanage.UpdateUserRole)
			users.PATCH("/admin/:email", edumanage.PromoteAdmin)
			users.PATCH("/remove-admin/:email", edumanage.RemoveAdmin)
		}

		teachers := api.Group("/teachers")
		{
			teachers.POST("", edumanage.SubmitTeacherApplication)
			teachers.GET("", edumanage.ListTeacherApplications)
			teachers.GET("/status/:email", edumanage.GetTeacherStatus)
			teachers.PATCH("/:id", edumanage.UpdateTeacherStatus)
		}

		classes := api.Group("/classes")
		{
			classes.POST("", edumanage.CreateClass)
			classes.GET("", edumanage.ListClassesByTeacher)
			classes.GET("/all", edumanage.ListAllClasses)
			classes.GET("/approved", edumanage.ListApprovedClasses)
			classes.GET("/top-enrolled", edumanage.TopEnrolledClasses)
			classes.GET("/:id", edumanage.GetClass)
			classes.PATCH("/:id", edumanage.UpdateClass)
			classes.DELETE("/:id", edumanage.DeleteClass)
		}

		assignments := api.Group("/assignments")
		{
			assignments.POST("", edumanage.CreateAssignment)
			assignments.GET("", edumanage.ListAssignments)
			assignments.GET("/count/:classId", edumanage.CountAssignments)
			assignments.PATCH("/increment-submission/:id", edumanage.IncrementSubmission)
			assignments.GET("/submitted/:classId", edumanage.ListSubmissions)
			assignments.GET("/submissions/count/:classId", edumanage.CountSubmissions)
		}
		api.POST("/submit-assignment", edumanage.SubmitAssignment)

		api.POST("/enroll", edumanage.Enroll)
		enrollments := api.Group("/enrollments")
		{
			enrollments.GET("", edumanage.CheckEnrollment)
			enrollments.GET("/history", edumanage.EnrollmentHistoryAll)
			enrollments.GET("/history/:studentEmail", edumanage.EnrollmentHistory)
			enrollments.GET("/count/:classId", edumanage.CountEnrollments)
		}
		api.GET("/my-enrollments", edumanage.MyEnrollments)

		api.POST("/create-payment-intent", edumanage.CreatePaymentIntent)

		api.POST("/feedback", edumanage.SubmitFeedback)
		api.GET("/feedbacks", edumanage.ListLatestFeedback)

		api.GET("/stats", edumanage.GetStats)

		sts := api.Group("/sts")
		{
			sts.POST("/upload-url", edumanage.GenUploadUrl)
		}
	}
}
