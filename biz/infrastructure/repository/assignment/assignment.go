package assignment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Assignment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID         string             `bson:"class_id" json:"classId"`
	Title           string             `bson:"title" json:"title"`
	Deadline        string             `bson:"deadline" json:"deadline"`
	Description     string             `bson:"description" json:"description"`
	Image           string             `bson:"image,omitempty" json:"image"`
	SubmissionCount int64              `bson:"submission_count" json:"submissionCount"`
	CreateTime      time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime      time.Time          `bson:"update_time" json:"updateTime"`
}
