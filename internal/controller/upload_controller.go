package controller

import (
	"fmt"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	StorageService *service.StorageService
}

func NewUploadController(storageService *service.StorageService) *UploadController {
	return &UploadController{StorageService: storageService}
}

// UploadThumbnail godoc
// @Summary 上传课程封面
// @Description 仅接受 image/* 且不超过 5MB；缺文件、类型不符、超限分别返回独立的错误信息
// @Tags 上传
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "图片文件"
// @Success 200 {object} util.Response{data=object} "公开可访问的 URL"
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response "存储未配置"
// @Router /upload/thumbnail [post]
func (c *UploadController) UploadThumbnail(ctx *gin.Context) {
	if _, ok := util.ActorFromContext(ctx); !ok {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "No file provided")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !util.IsImage(contentType) {
		util.BadRequest(ctx, "Only image files are allowed")
		return
	}

	if fileHeader.Size > util.MaxThumbnailSize {
		util.BadRequest(ctx, fmt.Sprintf("File size must be less than %dMB", util.MaxThumbnailSize/1024/1024))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.StorageService.UploadThumbnail(ctx.Request.Context(), fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
