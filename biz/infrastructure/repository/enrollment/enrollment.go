package enrollment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Enrollment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentEmail  string             `bson:"student_email" json:"studentEmail"`
	ClassID       string             `bson:"class_id" json:"classId"`
	Title         string             `bson:"title" json:"title"`
	Image         string             `bson:"image" json:"image"`
	Price         float64            `bson:"price" json:"price"`
	PaymentStatus string             `bson:"payment_status" json:"paymentStatus"`
	EnrollTime    time.Time          `bson:"enroll_time" json:"enrollTime"`
	CreateTime    time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime    time.Time          `bson:"update_time" json:"updateTime"`
}
