package apierrors

const (
	MsgUnauthorized       = "unauthorized"
	MsgInvalidPayload     = "invalidPayload"
	MsgInvalidID          = "invalidID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgTaskNotFound       = "taskNotFound"
	MsgSubtaskNotFound    = "subtaskNotFound"
	MsgFailListTask       = "errorListTask"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailListSubtasks   = "failListSubtasks"

	MsgCategoryNotFound     = "categoryNotFound"
	MsgAppWebsiteNotFound   = "appWebsiteNotFound"
	MsgProjectNotFound      = "projectNotFound"
	MsgDuplicateName        = "duplicateName"
	MsgFailCatalog          = "failCatalog"
	MsgNotificationNotFound = "notificationNotFound"
	MsgFailNotifications    = "failNotifications"

	MsgPasswordsDoNotMatch = "passwordsDoNotMatch"
	MsgUsernameTaken       = "usernameTaken"
	MsgEmailTaken          = "emailTaken"
	MsgInvalidCredentials  = "invalidCredentials"
	MsgWrongPassword       = "wrongPassword"
	MsgInvalidResetToken   = "invalidResetToken"
	MsgFailAuth            = "failAuth"
	MsgUserNotFound        = "userNotFound"

	MsgFailDashboard  = "failDashboard"
	MsgFailSuggestion = "failSuggestion"
)
