package class

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Class struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	Description   string             `bson:"description" json:"description"`
	Image         string             `bson:"image" json:"image"`
	Status        string             `bson:"status" json:"status"`
	TotalEnrolled int64              `bson:"total_enrolled" json:"totalEnrolled"`
	CreateTime    time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime    time.Time          `bson:"update_time" json:"updateTime"`
}
