package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳

	"wordnote/internal/model"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":             "名前",
	"term":             "単語",
	"part_of_speech":   "品詞",
	"phonetic":         "発音記号",
	"meaning":          "意味",
	"email":            "メールアドレス",
	"password":         "パスワード",
	"is_correct":       "回答の正誤",
	"query":            "検索語",
	"start_time":       "開始時刻",
	"end_time":         "終了時刻",
	"interval_minutes": "通知間隔",
}

func translatedField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// フィールド名だけを差し込むタグ
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translatedField(fe))
			return t
		})
	}
	// パラメータも差し込むタグ
	registerParamTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translatedField(fe), fe.Param())
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。")
	registerTranslation("datetime", "{0}はHH:MM形式で入力してください。")
	registerParamTranslation("min", "{0}は{1}以上で入力してください。")
	registerParamTranslation("max", "{0}は{1}以下で入力してください。")
}

// ValidateStruct はリクエストDTOを検証し、失敗時は最初のエラーを日本語化した AppError を返します
func ValidateStruct(req interface{}) error {
	err := Validator.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		firstErr := validationErrors[0]
		return model.NewAppError(
			"VALIDATION_ERROR",
			firstErr.Translate(Trans),
			firstErr.Field(),
			model.ErrInvalidInput,
		)
	}
	// バリデーションライブラリ自体のエラー
	return err
}
