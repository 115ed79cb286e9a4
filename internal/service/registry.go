package service

import (
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cms-backend/internal/dao"
	"cms-backend/internal/utils"
)

// Registry 聚合全部业务 Service，方便注入 handler
type Registry struct {
	Auth      *AuthService
	User      *UserService
	Role      *RoleService
	Category  *CategoryService
	Article   *ArticleService
	Comment   *CommentService
	Slideshow *SlideshowService
	Log       *LogService
}

// NewRegistry 使用共享 DB、Redis 与 Kafka 构建所有服务
func NewRegistry(
	db *gorm.DB,
	rdb *redis.Client,
	logWriter *kafka.Writer,
	logReader *kafka.Reader,
	jwtUtil *utils.JwtUtil,
	log *zap.Logger,
) *Registry {
	if log == nil {
		log = zap.NewNop()
	}

	categoryDao := dao.NewCategoryDao(db)
	articleDao := dao.NewArticleDao(db)
	commentDao := dao.NewCommentDao(db)
	subCommentDao := dao.NewSubCommentDao(db)
	userDao := dao.NewUserDao(db)
	roleDao := dao.NewRoleDao(db)
	slideshowDao := dao.NewSlideshowDao(db)
	logDao := dao.NewLogDao(db)
	txManager := dao.NewTxManager(db)

	return &Registry{
		Auth:      NewAuthService(userDao, roleDao, rdb, jwtUtil, log),
		User:      NewUserService(userDao, roleDao, log),
		Role:      NewRoleService(roleDao),
		Category:  NewCategoryService(categoryDao, articleDao, userDao, log),
		Article:   NewArticleService(articleDao, commentDao, log),
		Comment:   NewCommentService(commentDao, subCommentDao, userDao, txManager, log),
		Slideshow: NewSlideshowService(slideshowDao),
		Log:       NewLogService(logDao, logWriter, logReader, log),
	}
}
