package submission

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Submission struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssignmentID   string             `bson:"assignment_id" json:"assignmentId"`
	ClassID        string             `bson:"class_id" json:"classId"`
	StudentEmail   string             `bson:"student_email" json:"studentEmail"`
	SubmissionText string             `bson:"submission_text" json:"submissionText"`
	SubmitTime     time.Time          `bson:"submit_time" json:"submitTime"`
	CreateTime     time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime     time.Time          `bson:"update_time" json:"updateTime"`
}
