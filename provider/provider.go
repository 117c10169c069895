package provider

import (
	"edu-manage/biz/application/service"
	"edu-manage/biz/infrastructure/config"
	"edu-manage/biz/infrastructure/payment"
	"edu-manage/biz/infrastructure/repository/assignment"
	"edu-manage/biz/infrastructure/repository/class"
	"edu-manage/biz/infrastructure/repository/enrollment"
	"edu-manage/biz/infrastructure/repository/feedback"
	"edu-manage/biz/infrastructure/repository/submission"
	"edu-manage/biz/infrastructure/repository/teacher"
	"edu-manage/biz/infrastructure/repository/user"
	"edu-manage/biz/infrastructure/storage"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config            *config.Config
	UserService       service.IUserService
	TeacherService    service.ITeacherService
	ClassService      service.IClassService
	AssignmentService service.IAssignmentService
	EnrollmentService service.IEnrollmentService
	PaymentService    service.IPaymentService
	FeedbackService   service.IFeedbackService
	StatService       service.IStatService
	StsService        service.IStsService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.UserServiceSet,
	service.TeacherServiceSet,
	service.ClassServiceSet,
	service.AssignmentServiceSet,
	service.EnrollmentServiceSet,
	service.PaymentServiceSet,
	service.FeedbackServiceSet,
	service.StatServiceSet,
	service.StsServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	user.NewMongoMapper,
	wire.Bind(new(user.IMongoMapper), new(*user.MongoMapper)),
	teacher.NewMongoMapper,
	wire.Bind(new(teacher.IMongoMapper), new(*teacher.MongoMapper)),
	class.NewMongoMapper,
	wire.Bind(new(class.IMongoMapper), new(*class.MongoMapper)),
	assignment.NewMongoMapper,
	wire.Bind(new(assignment.IMongoMapper), new(*assignment.MongoMapper)),
	submission.NewMongoMapper,
	wire.Bind(new(submission.IMongoMapper), new(*submission.MongoMapper)),
	enrollment.NewMongoMapper,
	wire.Bind(new(enrollment.IMongoMapper), new(*enrollment.MongoMapper)),
	feedback.NewMongoMapper,
	wire.Bind(new(feedback.IMongoMapper), new(*feedback.MongoMapper)),
	payment.NewStripeClient,
	storage.NewS3Client,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
