package mock

//go:generate mockgen -destination loopback.go -package mock github.com/buildbarn/bb-devicemapper/pkg/loopback Control,Device
//go:generate mockgen -destination util.go -package mock github.com/buildbarn/bb-devicemapper/pkg/util ErrorLogger
