package styles

import "strconv"

// 选择器与关键帧命名
//
// 所有名称都嵌入实例 ID，多个实例同时存在时互不冲突，
// 删除时也只会影响单个实例的规则。

const (
	containerPrefix = "confetti-explosion-container-"
	screenPrefix    = "confetti-explosion-screen-"
	particlePrefix  = "confetti-explosion-particle-"
	stylePrefix     = "confetti-style-"
)

// ContainerClass 容器类名
func ContainerClass(instanceID string) string {
	return containerPrefix + instanceID
}

// ScreenClass 全屏遮罩层类名
func ScreenClass(instanceID string) string {
	return screenPrefix + instanceID
}

// ParticleClass 所有粒子共享的类名
func ParticleClass(instanceID string) string {
	return particlePrefix + instanceID
}

// ParticleIndexClass 单个粒子的类名
func ParticleIndexClass(instanceID string, index int) string {
	return particlePrefix + instanceID + "-" + strconv.Itoa(index)
}

// ParticleClasses 渲染层需要同时挂到粒子元素上的两个类名
func ParticleClasses(instanceID string, index int) string {
	return ParticleClass(instanceID) + " " + ParticleIndexClass(instanceID, index)
}

// RotationKeyframesName 旋转轴对应的关键帧名
func RotationKeyframesName(instanceID string, axisIndex int) string {
	return "rotation-" + instanceID + "-" + strconv.Itoa(axisIndex)
}

// YAxisKeyframesName 实例共享的垂直下落关键帧名
func YAxisKeyframesName(instanceID string) string {
	return "y-axis-" + instanceID
}

// XAxisKeyframesName 单个粒子的水平关键帧名
func XAxisKeyframesName(instanceID string, index int) string {
	return "x-axis-" + instanceID + "-" + strconv.Itoa(index)
}

// StyleID 样式表在注册表中的键
func StyleID(instanceID string) string {
	return stylePrefix + instanceID
}
