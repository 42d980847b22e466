package i18n

const (
	LangEN = "en"
	LangAR = "ar"
)

var SupportedLanguages = []string{LangEN, LangAR}

// Message dictionaries keyed by dotted message keys. Controllers pass keys
// (e.g. "order.created_success") and the response layer resolves them for
// the detected language, or both languages in bilingual mode.
var enMessages = map[string]string{
	"auth.registration_success":     "Registration successful. Please verify your email with the OTP sent.",
	"auth.email_already_exists":     "An account with this email already exists",
	"auth.email_verification_success": "Email verified successfully",
	"auth.already_verified":         "Email is already verified",
	"auth.email_not_verified":       "Please verify your email before logging in",
	"auth.invalid_credentials":      "Invalid email or password",
	"auth.invalid_otp":              "Invalid or expired OTP",
	"auth.login_success":            "Login successful",
	"auth.profile_retrieved":        "Profile retrieved successfully",
	"auth.user_not_found":           "User not found",
	"auth.account_inactive":         "This account has been deactivated",
	"auth.password_reset_otp_sent":  "If the email exists, a password reset code has been sent",
	"auth.password_reset_success":   "Password reset successfully",
	"auth.otp_resent":               "A new verification code has been sent",
	"auth.too_many_otp_requests":    "Too many OTP requests. Please try again later",
	"auth.unauthorized":             "Authentication required",
	"auth.forbidden":                "You do not have permission to perform this action",

	"user.list_retrieved":      "Users retrieved successfully",
	"user.retrieved_success":   "User retrieved successfully",
	"user.role_updated":        "User role updated successfully",
	"user.activated":           "User activated successfully",
	"user.deactivated":         "User deactivated successfully",
	"user.deleted_success":     "User deleted successfully",
	"user.stats_retrieved":     "User statistics retrieved successfully",
	"user.cannot_modify_self":  "You cannot change your own account here",

	"category.created_success":   "Category created successfully",
	"category.updated_success":   "Category updated successfully",
	"category.deleted_success":   "Category deleted successfully",
	"category.restored_success":  "Category restored successfully",
	"category.retrieved_success": "Category retrieved successfully",
	"category.list_retrieved":    "Categories retrieved successfully",
	"category.not_found":         "Category not found",

	"product.created_success":   "Product created successfully",
	"product.updated_success":   "Product updated successfully",
	"product.deleted_success":   "Product deleted successfully",
	"product.restored_success":  "Product restored successfully",
	"product.retrieved_success": "Product retrieved successfully",
	"product.list_retrieved":    "Products retrieved successfully",
	"product.not_found":         "Product not found",
	"product.not_available":     "Product is not available",
	"product.stock_updated":     "Stock updated successfully",
	"product.access_denied":     "You do not have access to this product",
	"product.sku_exists":        "A product with this SKU already exists",

	"order.created_success":          "Order created successfully",
	"order.retrieved_success":        "Order retrieved successfully",
	"order.list_retrieved":           "Orders retrieved successfully",
	"order.updated_success":          "Order status updated successfully",
	"order.cancelled_success":        "Order cancelled successfully",
	"order.not_found":                "Order not found",
	"order.invalid_status":           "Invalid order status",
	"order.invalid_transition":       "Order status cannot change to the requested state",
	"order.cancelled_cannot_update":  "Cancelled orders cannot be updated",
	"order.cannot_cancel":            "Order can no longer be cancelled",
	"order.insufficient_stock":       "Insufficient stock for one or more products",
	"order.stats_retrieved":          "Order statistics retrieved successfully",

	"validation.invalid_request":    "Invalid request data",
	"validation.invalid_id":         "Invalid identifier",
	"validation.stock_invalid":      "Stock must be a non-negative integer",
	"validation.operation_invalid":  "Operation must be one of add, subtract, set",
	"validation.insufficient_stock": "Resulting stock cannot be negative",

	"common.internal_error": "Something went wrong. Please try again later",
}

var arMessages = map[string]string{
	"auth.registration_success":     "تم التسجيل بنجاح. يرجى التحقق من بريدك الإلكتروني باستخدام الرمز المرسل.",
	"auth.email_already_exists":     "يوجد حساب مسجل بهذا البريد الإلكتروني",
	"auth.email_verification_success": "تم التحقق من البريد الإلكتروني بنجاح",
	"auth.already_verified":         "تم التحقق من البريد الإلكتروني مسبقًا",
	"auth.email_not_verified":       "يرجى التحقق من بريدك الإلكتروني قبل تسجيل الدخول",
	"auth.invalid_credentials":      "البريد الإلكتروني أو كلمة المرور غير صحيحة",
	"auth.invalid_otp":              "رمز التحقق غير صالح أو منتهي الصلاحية",
	"auth.login_success":            "تم تسجيل الدخول بنجاح",
	"auth.profile_retrieved":        "تم استرجاع الملف الشخصي بنجاح",
	"auth.user_not_found":           "المستخدم غير موجود",
	"auth.account_inactive":         "تم تعطيل هذا الحساب",
	"auth.password_reset_otp_sent":  "إذا كان البريد الإلكتروني موجودًا، فقد تم إرسال رمز إعادة تعيين كلمة المرور",
	"auth.password_reset_success":   "تمت إعادة تعيين كلمة المرور بنجاح",
	"auth.otp_resent":               "تم إرسال رمز تحقق جديد",
	"auth.too_many_otp_requests":    "طلبات كثيرة جدًا. يرجى المحاولة لاحقًا",
	"auth.unauthorized":             "المصادقة مطلوبة",
	"auth.forbidden":                "ليس لديك إذن للقيام بهذا الإجراء",

	"user.list_retrieved":      "تم استرجاع المستخدمين بنجاح",
	"user.retrieved_success":   "تم استرجاع المستخدم بنجاح",
	"user.role_updated":        "تم تحديث دور المستخدم بنجاح",
	"user.activated":           "تم تفعيل المستخدم بنجاح",
	"user.deactivated":         "تم تعطيل المستخدم بنجاح",
	"user.deleted_success":     "تم حذف المستخدم بنجاح",
	"user.stats_retrieved":     "تم استرجاع إحصائيات المستخدمين بنجاح",
	"user.cannot_modify_self":  "لا يمكنك تغيير حسابك الخاص من هنا",

	"category.created_success":   "تم إنشاء الفئة بنجاح",
	"category.updated_success":   "تم تحديث الفئة بنجاح",
	"category.deleted_success":   "تم حذف الفئة بنجاح",
	"category.restored_success":  "تمت استعادة الفئة بنجاح",
	"category.retrieved_success": "تم استرجاع الفئة بنجاح",
	"category.list_retrieved":    "تم استرجاع الفئات بنجاح",
	"category.not_found":         "الفئة غير موجودة",

	"product.created_success":   "تم إنشاء المنتج بنجاح",
	"product.updated_success":   "تم تحديث المنتج بنجاح",
	"product.deleted_success":   "تم حذف المنتج بنجاح",
	"product.restored_success":  "تمت استعادة المنتج بنجاح",
	"product.retrieved_success": "تم استرجاع المنتج بنجاح",
	"product.list_retrieved":    "تم استرجاع المنتجات بنجاح",
	"product.not_found":         "المنتج غير موجود",
	"product.not_available":     "المنتج غير متوفر",
	"product.stock_updated":     "تم تحديث المخزون بنجاح",
	"product.access_denied":     "ليس لديك صلاحية الوصول إلى هذا المنتج",
	"product.sku_exists":        "يوجد منتج بهذا الرمز التعريفي",

	"order.created_success":          "تم إنشاء الطلب بنجاح",
	"order.retrieved_success":        "تم استرجاع الطلب بنجاح",
	"order.list_retrieved":           "تم استرجاع الطلبات بنجاح",
	"order.updated_success":          "تم تحديث حالة الطلب بنجاح",
	"order.cancelled_success":        "تم إلغاء الطلب بنجاح",
	"order.not_found":                "الطلب غير موجود",
	"order.invalid_status":           "حالة الطلب غير صالحة",
	"order.invalid_transition":       "لا يمكن تغيير حالة الطلب إلى الحالة المطلوبة",
	"order.cancelled_cannot_update":  "لا يمكن تحديث الطلبات الملغاة",
	"order.cannot_cancel":            "لم يعد بالإمكان إلغاء الطلب",
	"order.insufficient_stock":       "المخزون غير كافٍ لمنتج واحد أو أكثر",
	"order.stats_retrieved":          "تم استرجاع إحصائيات الطلبات بنجاح",

	"validation.invalid_request":    "بيانات الطلب غير صالحة",
	"validation.invalid_id":         "معرّف غير صالح",
	"validation.stock_invalid":      "يجب أن يكون المخزون عددًا صحيحًا غير سالب",
	"validation.operation_invalid":  "يجب أن تكون العملية واحدة من: إضافة، طرح، تعيين",
	"validation.insufficient_stock": "لا يمكن أن يكون المخزون الناتج سالبًا",

	"common.internal_error": "حدث خطأ ما. يرجى المحاولة لاحقًا",
}

// Translate resolves a message key for one language, falling back to
// English and finally to the key itself.
func Translate(key, lang string) string {
	if lang == LangAR {
		if msg, ok := arMessages[key]; ok {
			return msg
		}
	}
	if msg, ok := enMessages[key]; ok {
		return msg
	}
	return key
}

// TranslateMessage resolves a key for the response envelope. In bilingual
// mode it returns both variants.
func TranslateMessage(key, lang string, bilingual bool) interface{} {
	if bilingual {
		return map[string]string{
			LangEN: Translate(key, LangEN),
			LangAR: Translate(key, LangAR),
		}
	}
	return Translate(key, lang)
}

func Supported(lang string) bool {
	return lang == LangEN || lang == LangAR
}
