package user

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/VladimirStepanovN/Blog/internal/authz"
	"github.com/VladimirStepanovN/Blog/internal/dto"
	userModel "github.com/VladimirStepanovN/Blog/internal/model/user"
	"github.com/VladimirStepanovN/Blog/internal/pkg"
	"github.com/VladimirStepanovN/Blog/internal/response"
	"github.com/VladimirStepanovN/Blog/internal/role"
	"github.com/VladimirStepanovN/Blog/internal/session"
)

// UserService 用户服务
type UserService struct {
	userRepo     *UserRepository
	roleResolver *role.Resolver
	// 刷新令牌存储，未配置 Redis 时为 nil，此时登录只发访问令牌
	sessions *session.Store
	logger   *zap.SugaredLogger
}

func NewUserService(userRepo *UserRepository, roleResolver *role.Resolver, sessions *session.Store, logger *zap.SugaredLogger) *UserService {
	return &UserService{
		userRepo:     userRepo,
		roleResolver: roleResolver,
		sessions:     sessions,
		logger:       logger,
	}
}

// Register 注册新用户
// 登录名冲突优先于邮箱冲突报错，注册成功分配基础角色
func (s *UserService) Register(req dto.RegisterUserRequest) (*dto.UserResponse, *response.BusinessError) {
	if _, err := s.userRepo.GetByLogin(req.Login); err == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("该登录名已被占用: "+req.Login),
		)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.internalError("查询登录名失败", err)
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("该邮箱已被注册: "+req.Email),
		)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.internalError("查询邮箱失败", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, s.internalError("密码加密失败", err)
	}

	baseRole, err := s.roleResolver.GetDefaultUserRole()
	if err != nil {
		return nil, s.internalError("获取默认角色失败", err)
	}

	newUser := &userModel.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Login:        req.Login,
		PasswordHash: string(hash),
		RoleID:       baseRole.ID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(newUser); err != nil {
		return nil, s.internalError("用户创建失败", err)
	}

	s.logger.Infow("user registered", "user_id", newUser.ID, "login", newUser.Login)

	resp := toUserResponse(newUser, baseRole.RoleName)
	return &resp, nil
}

// Authenticate 登录：校验密码，签发访问令牌和刷新令牌
func (s *UserService) Authenticate(ctx context.Context, req dto.AuthenticateRequest) (*dto.AuthenticateResponse, *response.BusinessError) {
	u, err := s.userRepo.GetByLogin(req.Login)
	if err != nil {
		// 登录名不存在和密码错误对外同一种说法，不暴露账号是否存在
		return nil, invalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, invalidCredentials()
	}

	roleName, bizErr := s.roleNameOf(u)
	if bizErr != nil {
		return nil, bizErr
	}

	accessToken, err := pkg.GenerateAccessToken(u.ID, u.Login, u.Email, roleName)
	if err != nil {
		return nil, s.internalError("生成访问令牌失败", err)
	}

	var refreshToken string
	if s.sessions != nil {
		refreshToken, err = pkg.GenerateRandomToken()
		if err != nil {
			return nil, s.internalError("生成刷新令牌失败", err)
		}
		if err := s.sessions.Create(ctx, refreshToken, session.TokenData{
			UserID: u.ID,
			Login:  u.Login,
			Email:  u.Email,
			Role:   roleName,
		}); err != nil {
			return nil, s.internalError("存储刷新令牌失败", err)
		}
	}

	s.logger.Infow("user authenticated", "user_id", u.ID, "login", u.Login)

	return &dto.AuthenticateResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         toUserResponse(u, roleName),
	}, nil
}

// Refresh 用刷新令牌换新的访问令牌，旧刷新令牌作废（轮换）
func (s *UserService) Refresh(ctx context.Context, req dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, *response.BusinessError) {
	if s.sessions == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("刷新令牌未启用"),
		)
	}

	tokenData, err := s.sessions.Get(ctx, req.RefreshToken)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("刷新令牌无效或已过期"),
		)
	}

	// 撤销旧令牌后再签发，防止重放
	if err := s.sessions.Delete(ctx, req.RefreshToken); err != nil {
		return nil, s.internalError("撤销旧令牌失败", err)
	}

	accessToken, err := pkg.GenerateAccessToken(tokenData.UserID, tokenData.Login, tokenData.Email, tokenData.Role)
	if err != nil {
		return nil, s.internalError("生成访问令牌失败", err)
	}

	newRefreshToken, err := pkg.GenerateRandomToken()
	if err != nil {
		return nil, s.internalError("生成刷新令牌失败", err)
	}
	if err := s.sessions.Create(ctx, newRefreshToken, *tokenData); err != nil {
		return nil, s.internalError("存储刷新令牌失败", err)
	}

	return &dto.RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout 登出，删除刷新令牌
func (s *UserService) Logout(ctx context.Context, req dto.LogoutRequest) *response.BusinessError {
	if s.sessions == nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, req.RefreshToken); err != nil {
		return s.internalError("删除刷新令牌失败", err)
	}
	return nil
}

// Update 编辑用户
// 管理员可改任何账号，基础角色只能改自己
func (s *UserService) Update(req dto.UpdateUserRequest, actingLogin string) *response.BusinessError {
	actor, actorRole, bizErr := s.resolveActor(actingLogin)
	if bizErr != nil {
		return bizErr
	}

	target, err := s.userRepo.GetByID(req.UserID)
	exists := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return s.internalError("查询用户失败", err)
	}

	var ownerID *uint
	if exists {
		ownerID = &target.ID
	}

	decision := authz.Decide(actorRole, actor.ID, authz.Target{
		Kind:    authz.KindUser,
		Exists:  exists,
		OwnerID: ownerID,
	})
	if bizErr := denyError(decision, "用户不存在"); bizErr != nil {
		return bizErr
	}

	fields := map[string]interface{}{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"email":      req.Email,
		"updated_at": time.Now(),
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return s.internalError("密码加密失败", err)
		}
		fields["password_hash"] = string(hash)
	}

	if err := s.userRepo.Update(req.UserID, fields); err != nil {
		return s.internalError("用户更新失败", err)
	}

	s.logger.Infow("user updated", "user_id", req.UserID, "acting_login", actingLogin)
	return nil
}

// Delete 删除用户
func (s *UserService) Delete(userID uint, actingLogin string) *response.BusinessError {
	actor, actorRole, bizErr := s.resolveActor(actingLogin)
	if bizErr != nil {
		return bizErr
	}

	target, err := s.userRepo.GetByID(userID)
	exists := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return s.internalError("查询用户失败", err)
	}

	var ownerID *uint
	if exists {
		ownerID = &target.ID
	}

	decision := authz.Decide(actorRole, actor.ID, authz.Target{
		Kind:    authz.KindUser,
		Exists:  exists,
		OwnerID: ownerID,
	})
	if bizErr := denyError(decision, "用户不存在"); bizErr != nil {
		return bizErr
	}

	if err := s.userRepo.Delete(userID); err != nil {
		return s.internalError("用户删除失败", err)
	}

	s.logger.Infow("user deleted", "user_id", userID, "acting_login", actingLogin)
	return nil
}

// Get 根据ID获取用户
func (s *UserService) Get(userID uint) (*dto.UserResponse, *response.BusinessError) {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("用户不存在"),
			)
		}
		return nil, s.internalError("查询用户失败", err)
	}

	roleName, bizErr := s.roleNameOf(u)
	if bizErr != nil {
		return nil, bizErr
	}

	resp := toUserResponse(u, roleName)
	return &resp, nil
}

// GetAll 获取全部用户
func (s *UserService) GetAll() ([]dto.UserResponse, *response.BusinessError) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, s.internalError("查询用户列表失败", err)
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		roleName := ""
		if users[i].Role != nil {
			roleName = users[i].Role.RoleName
		}
		result = append(result, toUserResponse(&users[i], roleName))
	}
	return result, nil
}

// resolveActor 根据登录名解析发起人及其角色名
func (s *UserService) resolveActor(actingLogin string) (*userModel.User, string, *response.BusinessError) {
	actor, err := s.userRepo.GetByLogin(actingLogin)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("发起人账号不存在"),
			)
		}
		return nil, "", s.internalError("查询发起人失败", err)
	}

	roleName, bizErr := s.roleNameOf(actor)
	if bizErr != nil {
		return nil, "", bizErr
	}
	return actor, roleName, nil
}

// roleNameOf 取用户的角色名，Preload 失效时退回按ID查询
func (s *UserService) roleNameOf(u *userModel.User) (string, *response.BusinessError) {
	if u.Role != nil {
		return u.Role.RoleName, nil
	}

	r, err := s.roleResolver.GetRoleByID(u.RoleID)
	if err != nil {
		return "", s.internalError("查询角色失败", err)
	}
	return r.RoleName, nil
}

func (s *UserService) internalError(msg string, err error) *response.BusinessError {
	s.logger.Errorw(msg, "error", err)
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage(msg),
		response.WithError(err),
	)
}

func invalidCredentials() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Unauthorized),
		response.WithErrorMessage("登录名或密码错误"),
	)
}

// denyError 把授权判定结果转成业务错误，放行时返回 nil
func denyError(decision authz.Decision, notFoundMsg string) *response.BusinessError {
	switch decision {
	case authz.DecisionAllowed:
		return nil
	case authz.DecisionNotFound:
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage(notFoundMsg),
		)
	default:
		return response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("无权限执行此操作"),
		)
	}
}

func toUserResponse(u *userModel.User, roleName string) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Login:     u.Login,
		RoleName:  roleName,
		CreatedAt: u.CreatedAt,
	}
}
