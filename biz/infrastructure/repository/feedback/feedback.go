package feedback

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Feedback struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentEmail string             `bson:"student_email" json:"studentEmail"`
	ClassID      string             `bson:"class_id" json:"classId"`
	Description  string             `bson:"description" json:"description"`
	Rating       float64            `bson:"rating" json:"rating"`
	Image        *string            `bson:"image" json:"image"`
	CreateTime   time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime   time.Time          `bson:"update_time" json:"updateTime"`
}
