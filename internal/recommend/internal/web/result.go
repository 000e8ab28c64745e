package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/recommend/internal/recommend/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidItemKindResult = ginx.Result{
		Code: errs.InvalidItemKind.Code,
		Msg:  errs.InvalidItemKind.Msg,
	}
	invalidActionResult = ginx.Result{
		Code: errs.InvalidActionType.Code,
		Msg:  errs.InvalidActionType.Msg,
	}
)
