package mocks

//go:generate mockery --name InventoryStore --srcpkg github.com/stockroom-lab/stockroom/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name SaleStore --srcpkg github.com/stockroom-lab/stockroom/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
