package teacher

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application 教师入驻申请
type Application struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Image      string             `bson:"image" json:"image"`
	Experience string             `bson:"experience" json:"experience"`
	Title      string             `bson:"title" json:"title"`
	Category   string             `bson:"category" json:"category"`
	Status     string             `bson:"status" json:"status"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}
